// cliclient is a CLI worker for the distributed Mandelbrot renderer.
// It connects to the server, evaluates the tiles it is given, then downloads the
// finished escape-time map and saves it as an image.

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net"
	"os"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/escape"
	"github.com/marben/mandelplane/internal/cli"
	"github.com/marben/mandelplane/render"
)

// errEmptyMap is returned when the server hands back a map without samples.
var errEmptyMap = errors.New("server returned an empty map")

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run works for the server until all tiles are done, then saves the result.
// Returns an error if any step fails.
func run(args []string) error {
	fs := cli.NewFlagSet("cliclient")
	server := fs.String("server", "localhost:8081", "server tcp address")
	output := fs.String("o", "mandel.png", "output image")
	cmap := fs.String("cmap", render.DefaultColorMap, "colour map")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cm, err := render.Lookup(*cmap)
	if err != nil {
		return err
	}

	// Step 1: Connect to the server via TCP
	log.Printf("Connecting to Mandelbrot server at %s...", *server)
	tcpConn, err := net.Dial("tcp", *server)
	if err != nil {
		return fmt.Errorf("net.Dial(): %w", err)
	}
	defer tcpConn.Close()

	// Step 2: Provide our CPU to the server as a Renderer
	tilesDone := 0
	renderer := mandel.RendererImpl{
		OnTileRender: func(rows, cols int) {
			tilesDone++
			log.Printf("Evaluating tile %d: %dx%d", tilesDone, cols, rows)
		},
	}
	rendererService := mandel.NewRendererIrpcService(renderer)
	ep := irpc.NewEndpoint(tcpConn, irpc.WithEndpointServices(rendererService))
	defer ep.Close()

	// Step 3: Wait for the whole map. The server renders on us in the meantime.
	provider, err := mandel.NewMapProviderIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create map provider client: %w", err)
	}
	log.Printf("Requesting fully rendered map from server...")
	m, err := provider.GetMap(context.Background())
	if err != nil {
		return fmt.Errorf("GetMap: %w", err)
	}
	log.Printf("Server finished all tiles, %d evaluated here", tilesDone)

	// Step 4: Save the rendered image
	img, err := mapImage(m, cm)
	if err != nil {
		return err
	}
	log.Printf("Saving rendered image to %q...", *output)
	if err := render.Save(*output, img); err != nil {
		return err
	}
	log.Printf("Fully rendered image saved to %q", *output)
	return nil
}

// mapImage colours m, refusing maps without samples.
func mapImage(m escape.Map, cm render.ColorMap) (*image.RGBA, error) {
	if m.Rows <= 0 || m.Cols <= 0 || len(m.Counts) != m.Rows*m.Cols {
		return nil, fmt.Errorf("%w: %dx%d with %d counts", errEmptyMap, m.Cols, m.Rows, len(m.Counts))
	}
	return render.Image(m, cm), nil
}
