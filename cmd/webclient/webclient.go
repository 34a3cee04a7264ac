//go:build js && wasm

// webclient.go is a WASM web client for the distributed Mandelbrot renderer.
// It renders tiles for the server over irpc and paints the tile stream as workers
// finish them.

package main

import (
	"context"
	"fmt"
	"log"
	"syscall/js"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/internal/tileproto"
	"github.com/marben/mandelplane/render"
)

// main is the entry point for the WASM web client.
// The browser is a worker like any cliclient, and also displays every finished tile.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"
	tilesUrl := proto + "://" + host + "/tiles"
	ctx := context.Background()

	// Step 2: Provide our CPU to the server as a Renderer
	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	c, _, err := websocket.Dial(ctx, websocketUrl, nil)
	if err != nil {
		logFatalf("dial %s: %v", websocketUrl, err)
	}
	tilesRendered := 0
	rendererService := mandel.NewRendererIrpcService(mandel.RendererImpl{
		OnTileRender: func(rows, cols int) {
			tilesRendered++
			hudSetRendered(tilesRendered)
		},
	})
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary), irpc.WithEndpointServices(rendererService))
	defer ep.Close()

	// Step 3: Stream tiles and paint them
	logScreenf("Connecting to Mandelbrot server at %s...", tilesUrl)
	var maxIter int
	err = tileproto.Watch(ctx, tilesUrl,
		func(h tileproto.Hello) error {
			maxIter = h.MaxIter
			logScreenf("Dimensions: %dx%d, %d tiles", h.Width, h.Height, h.TotalTiles)
			initCanvas(h.Width, h.Height, "#3a3a6e")
			hudSetTotalTiles(h.TotalTiles)
			return nil
		},
		func(u tileproto.TileUpdate) error {
			drawTileToCanvas(render.Tile(u.Map(), u.Origin(), maxIter, render.GistHeat))
			hudSetFinishedTiles(u.Finished)
			hudSetWorkers(u.Workers)
			return nil
		},
	)
	if err != nil {
		logFatalf("tile stream: %v", err)
	}
	logScreenf("All tiles received.")

	// Step 4: Block main goroutine to keep WASM running
	select {}
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetWorkers updates the HUD to show the number of currently running workers.
func hudSetWorkers(workers int) {
	js.Global().Get("document").Call("getElementById", "workersRunning").Set("textContent", workers)
}

// hudSetFinishedTiles updates the HUD to show the number of finished tiles.
func hudSetFinishedTiles(finished int) {
	js.Global().Get("document").Call("getElementById", "tilesDone").Set("textContent", finished)
}

func hudSetTotalTiles(total int) {
	js.Global().Get("document").Call("getElementById", "tilesTotal").Set("textContent", total)
}

// hudSetRendered updates the HUD to show the number of tiles rendered in this browser.
func hudSetRendered(n int) {
	js.Global().Get("document").Call("getElementById", "tilesRendered").Set("textContent", n)
}
