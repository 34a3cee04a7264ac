package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/internal/cli"
	"github.com/marben/mandelplane/internal/tiles"
	"github.com/marben/mandelplane/internal/tileserver"
	"github.com/marben/mandelplane/render"
)

// main is the entry point for the Mandelbrot server.
// The server splits the image into tiles and hands them to every irpc client, tcp
// (cliclient) or websocket (webclient), and to its own local goroutines.
func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string) error {
	fs := cli.NewFlagSet("server")
	cfg := mandel.DefaultConfig()
	cfg.XRes, cfg.YRes = 1920, 1080
	cfg.Region = mandel.SeahorseValley
	cfg.MaxIter = 1000
	cf := cli.BindConfig(fs, &cfg)
	addr := fs.String("addr", ":8080", "http listen address")
	tcpAddr := fs.String("tcp", ":8081", "irpc tcp listen address")
	static := fs.String("static", "./static", "directory served on /")
	local := fs.Int("local", 0, "goroutines evaluating tiles inside the server")
	output := fs.String("o", "", "write the plot here once all tiles are finished")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cf.Resolve(); err != nil {
		return err
	}

	sched := tiles.NewScheduler(cfg.Grid(), tiles.DefaultTileSize)
	srv := tileserver.New(sched, cfg.Params(), tileserver.WithStaticDir(*static))
	httpServer := srv.HTTPServer(*addr)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// httpServer provides the static files along with the websocket endpoints
	go func() {
		log.Printf("listening on http://localhost%s (irpc: /ws, viewers: /tiles)", *addr)
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// the irpc server serves both tcp and websocket clients
	go func() {
		if err := srv.Serve(tcpListener); err != nil {
			log.Fatalf("server.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := srv.Serve(srv.Listener()); err != nil {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	ctx := context.Background()
	for i := 0; i < *local; i++ {
		go func() {
			if err := sched.Evaluate(ctx, cfg.Params()); err != nil {
				log.Printf("local worker: %v", err)
			}
		}()
	}

	log.Printf("mb server waiting for tcp and websocket connections to render %dx%d samples of %s", cfg.XRes, cfg.YRes, cfg.Region)
	start := time.Now()
	m, err := sched.Wait(ctx)
	if err != nil {
		return err
	}
	log.Printf("all tiles finished in %s", time.Since(start))

	if *output != "" {
		extent := cfg.Extent()
		img, err := render.Plot(m, render.Options{Extent: &extent, ColorMap: cfg.ColorMap})
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		if err := render.Save(*output, img); err != nil {
			return err
		}
		log.Printf("fully rendered plot saved to %q", *output)
	}

	// keep serving viewers that connect late
	select {}
}
