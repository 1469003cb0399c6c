package twitch

import (
	"context"
	"log"

	twitchirc "github.com/gempir/go-twitch-irc/v4"
)

// Client envuelve go-twitch-irc y engancha los callbacks al Handler.
type Client struct {
	client  *twitchirc.Client
	handler *Handler
	channel string
}

func NewClient(username, oauth, channel string, handler *Handler) *Client {
	c := &Client{
		client:  twitchirc.NewClient(username, oauth),
		handler: handler,
		channel: channel,
	}

	c.client.OnPrivateMessage(func(m twitchirc.PrivateMessage) {
		c.handler.HandleChat(m)
	})

	c.client.OnConnect(func() {
		log.Printf("✅ twitch conectado, entrando a #%s", channel)
		c.client.Join(channel)
	})

	c.client.OnReconnectMessage(func(m twitchirc.ReconnectMessage) {
		log.Printf("twitch: el servidor pidió RECONNECT")
	})

	return c
}

// Run conecta y bloquea hasta que se cancele el contexto o falle la
// conexión. Se puede volver a llamar después de un error (el retry vive
// en cmd/bot).
func (c *Client) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- c.client.Connect()
	}()

	select {
	case <-ctx.Done():
		c.client.Disconnect()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
