package tileproto

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// ErrNoHello is returned by Watch when the stream does not start with a Hello.
var ErrNoHello = errors.New("tile stream did not start with hello")

// Watch connects to the /tiles endpoint at url, calls onHello once and onTile for
// every finished tile, and returns nil when the server has sent all tiles.
func Watch(ctx context.Context, url string, onHello func(Hello) error, onTile func(TileUpdate) error) error {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer c.CloseNow()
	c.SetReadLimit(MessageLimit)

	first := true
	for {
		var msg Message
		if err := wsjson.Read(ctx, c, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read tile stream: %w", err)
		}

		switch {
		case first && (msg.Kind != KindHello || msg.Hello == nil):
			return ErrNoHello
		case msg.Kind == KindHello && msg.Hello != nil:
			if err := onHello(*msg.Hello); err != nil {
				return err
			}
		case msg.Kind == KindTile && msg.Tile != nil:
			if r := msg.Tile.Rect.Rectangle(); len(msg.Tile.Counts) != r.Dx()*r.Dy() {
				return fmt.Errorf("tile %s: %d counts", r, len(msg.Tile.Counts))
			}
			if err := onTile(*msg.Tile); err != nil {
				return err
			}
		}
		first = false
	}
}

// Origin returns the top-left corner of the tile in image coordinates.
func (u TileUpdate) Origin() image.Point {
	return u.Rect.Rectangle().Min
}
