package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/wall-go/internal/adapters/webapi"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/kiryu-dev/wall-go/pkg/utils"
	"github.com/pkg/errors"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "server address")
	clientKey := flag.String("key", "", "client key used to resume a session")
	flag.Parse()
	if *clientKey == "" {
		*clientKey = uuid.NewString()
	}
	api := webapi.New("http://" + *addr)
	health, err := api.HealthCheck(context.Background())
	if err != nil {
		log.Fatal("health check: " + err.Error())
	}
	fmt.Printf("server %s, active sessions: %d\n", health.Status, health.Sessions)
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/game"}
	header := http.Header{}
	header.Set(domain.ClientUuidHeader, *clientKey)
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Fatal("dial: " + err.Error())
	}
	defer func() {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()
	client := newClient(conn, api)
	if err := client.handleActions(); err != nil {
		log.Fatal(err)
	}
}

type sessionRepository interface {
	Session(ctx context.Context, sessionUuid string) (*domain.Snapshot, error)
}

type client struct {
	conn    *websocket.Conn
	api     sessionRepository
	scanner *bufio.Scanner
	last    domain.Snapshot
}

func newClient(conn *websocket.Conn, api sessionRepository) *client {
	return &client{
		conn:    conn,
		api:     api,
		scanner: bufio.NewScanner(os.Stdin),
	}
}

// handleActions alternates between rendering the server's reply and reading
// the next command from the terminal. Both players share one terminal.
func (c *client) handleActions() error {
	for {
		msg := new(domain.Message)
		if err := c.conn.ReadJSON(msg); err != nil {
			return errors.WithMessage(err, "read json msg")
		}
		switch msg.Type {
		case domain.SnapshotMessage:
			snapshot, err := utils.UnmarshalJson[domain.Snapshot](msg.Payload)
			if err != nil {
				return errors.WithMessage(err, "unmarshal json to 'Snapshot' type")
			}
			c.last = snapshot
			fmt.Print("\033[H\033[J")
			fmt.Print(renderSnapshot(snapshot))
		case domain.ErrorMessage:
			payload, err := utils.UnmarshalJson[domain.ErrorPayload](msg.Payload)
			if err != nil {
				return errors.WithMessage(err, "unmarshal json to 'ErrorPayload' type")
			}
			fmt.Println("server: " + payload.Message)
		}
		cmd, quit, err := c.requestCommand()
		if err != nil {
			return errors.WithMessage(err, "request command")
		}
		if quit {
			return nil
		}
		err = c.conn.WriteJSON(domain.Message{
			Type:    domain.CommandMessage,
			Payload: cmd,
		})
		if err != nil {
			return errors.WithMessage(err, "write json msg")
		}
	}
}

func (c *client) requestCommand() (domain.Command, bool, error) {
	for {
		fmt.Printf("%s> ", promptFor(c.last))
		if ok := c.scanner.Scan(); !ok {
			if err := c.scanner.Err(); err != nil {
				return domain.Command{}, false, err
			}
			return domain.Command{}, true, nil
		}
		cmd, err := parseCommand(c.scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return domain.Command{}, true, nil
		case errors.Is(err, errStatus):
			c.printStatus()
			continue
		case err != nil:
			fmt.Println(err.Error())
			continue
		}
		return cmd, false, nil
	}
}

func (c *client) printStatus() {
	snapshot, err := c.api.Session(context.Background(), c.last.SessionUuid)
	if err != nil {
		fmt.Println("status: " + err.Error())
		return
	}
	fmt.Println(statusLine(*snapshot))
}
