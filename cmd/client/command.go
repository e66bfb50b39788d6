package main

import (
	"strconv"
	"strings"

	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/pkg/errors"
)

var (
	errQuit         = errors.New("quit")
	errStatus       = errors.New("status")
	errUsage        = errors.New("usage: place r c | select id | move r c | wall r c h|v | deselect | restart | status | quit")
	errBadArguments = errors.New("bad arguments")
)

func parseCommand(line string) (domain.Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return domain.Command{}, errUsage
	}
	args := fields[1:]
	switch fields[0] {
	case "place", "p":
		pos, err := parsePosition(args, 2)
		if err != nil {
			return domain.Command{}, errors.WithMessage(err, "place")
		}
		return domain.Command{Type: domain.PlacePieceCommand, Position: pos}, nil
	case "select", "s":
		if len(args) != 1 {
			return domain.Command{}, errors.WithMessage(errBadArguments, "select")
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return domain.Command{}, errors.WithMessage(err, "select")
		}
		return domain.Command{Type: domain.SelectPieceCommand, PieceID: domain.PieceID(id)}, nil
	case "move", "m":
		pos, err := parsePosition(args, 2)
		if err != nil {
			return domain.Command{}, errors.WithMessage(err, "move")
		}
		return domain.Command{Type: domain.MovePieceCommand, Position: pos}, nil
	case "wall", "w":
		pos, err := parsePosition(args, 3)
		if err != nil {
			return domain.Command{}, errors.WithMessage(err, "wall")
		}
		var orientation domain.Orientation
		switch args[2] {
		case "h", "horizontal":
			orientation = domain.Horizontal
		case "v", "vertical":
			orientation = domain.Vertical
		default:
			return domain.Command{}, errors.Errorf("wall: unknown orientation '%s'", args[2])
		}
		return domain.Command{Type: domain.PlaceWallCommand, Position: pos, Orientation: orientation}, nil
	case "deselect", "d":
		return domain.Command{Type: domain.DeselectCommand}, nil
	case "restart":
		return domain.Command{Type: domain.RestartCommand}, nil
	case "status":
		return domain.Command{}, errStatus
	case "quit", "q":
		return domain.Command{}, errQuit
	default:
		return domain.Command{}, errUsage
	}
}

// parsePosition reads the row and column from the first two of want args.
func parsePosition(args []string, want int) (domain.Position, error) {
	if len(args) != want {
		return domain.Position{}, errBadArguments
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return domain.Position{}, errors.WithMessage(err, "row")
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return domain.Position{}, errors.WithMessage(err, "column")
	}
	return domain.Position{Row: row, Col: col}, nil
}
