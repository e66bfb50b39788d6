package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrUnknownCommand   = errors.New("unknown command")
)

const (
	ClientUuidHeader = "X-Client-Key"
)

type messageType byte

const (
	CommandMessage = messageType(iota)
	SnapshotMessage
	ErrorMessage
)

type Message struct {
	Type    messageType
	Payload any
}

type ErrorPayload struct {
	Message string
}

type Client interface {
	WriteMessage(msg Message) error
	ReadMessage() (Message, error)
	Uuid() string
}
