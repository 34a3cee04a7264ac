package tileproto

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// serve runs handle on every websocket connection made to the returned url.
func serve(t *testing.T, handle func(ctx context.Context, c *websocket.Conn)) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer c.CloseNow()
		c.SetReadLimit(MessageLimit)
		handle(r.Context(), c)
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestWatchNeedsHello(t *testing.T) {
	url := serve(t, func(ctx context.Context, c *websocket.Conn) {
		wsjson.Write(ctx, c, Message{Kind: KindTile, Tile: &TileUpdate{}})
		c.Close(websocket.StatusNormalClosure, "")
	})
	err := Watch(testContext(t), url,
		func(Hello) error { return nil },
		func(TileUpdate) error { return nil },
	)
	if !errors.Is(err, ErrNoHello) {
		t.Fatalf("want ErrNoHello, got %v", err)
	}
}

func TestWatchRejectsShortTile(t *testing.T) {
	url := serve(t, func(ctx context.Context, c *websocket.Conn) {
		wsjson.Write(ctx, c, Message{Kind: KindHello, Hello: &Hello{Width: 4, Height: 4, TotalTiles: 1}})
		wsjson.Write(ctx, c, Message{Kind: KindTile, Tile: &TileUpdate{Rect: Rect{0, 0, 4, 4}, Counts: []int{1}}})
		c.Close(websocket.StatusNormalClosure, "")
	})
	err := Watch(testContext(t), url,
		func(Hello) error { return nil },
		func(TileUpdate) error { return nil },
	)
	if err == nil {
		t.Fatalf("expected error for short tile")
	}
}
