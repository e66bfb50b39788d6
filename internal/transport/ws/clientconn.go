package ws

import (
	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/wall-go/internal/domain"
	"github.com/pkg/errors"
)

type client struct {
	conn *websocket.Conn
	uuid string
}

func newClient(conn *websocket.Conn, uuid string) client {
	return client{conn: conn, uuid: uuid}
}

func (c client) WriteMessage(msg domain.Message) error {
	if err := c.conn.WriteJSON(msg); err != nil {
		return errors.WithMessage(err, "websocket conn write json")
	}
	return nil
}

func (c client) ReadMessage() (domain.Message, error) {
	var msg domain.Message
	if err := c.conn.ReadJSON(&msg); err != nil {
		var closeErr *websocket.CloseError
		if errors.As(err, &closeErr) {
			return domain.Message{}, domain.ErrConnectionClosed
		}
		return domain.Message{}, errors.WithMessage(err, "websocket conn read json")
	}
	return msg, nil
}

func (c client) Uuid() string {
	return c.uuid
}

func (c client) Close() {
	_ = c.conn.Close()
}
