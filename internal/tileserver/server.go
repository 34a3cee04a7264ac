// Package tileserver distributes tile evaluation to remote workers over irpc and
// streams finished tiles to viewers.
//
// Every irpc connection, tcp or websocket, must provide mandel.Renderer and is used
// as a worker until no tiles are left. The server provides mandel.MapProvider.
//
// HTTP endpoints:
//
//	/ws     websocket transport for irpc, see Listener
//	/tiles  a viewer connects and receives a Hello followed by every finished tile
//	/       static files
package tileserver

import (
	"context"
	"fmt"
	"image"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/marben/irpc"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/escape"
	"github.com/marben/mandelplane/internal/tileproto"
	"github.com/marben/mandelplane/internal/tiles"
)

// Server serves one scheduler.
type Server struct {
	sched  *tiles.Scheduler
	params escape.Params

	staticDir      string
	originPatterns []string
	pollInterval   time.Duration

	irpcServer *irpc.Server
	wsListener *WebsocketListener
}

// Option configures a Server.
type Option func(*Server)

// WithStaticDir serves files from dir on "/".
func WithStaticDir(dir string) Option {
	return func(s *Server) { s.staticDir = dir }
}

// WithOriginPatterns sets the origins accepted for websocket upgrades.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.originPatterns = patterns }
}

// WithPollInterval sets how often viewers are checked for new tiles.
func WithPollInterval(d time.Duration) Option {
	return func(s *Server) { s.pollInterval = d }
}

// New returns a server handing out the tiles of sched, evaluated with params.
func New(sched *tiles.Scheduler, params escape.Params, opts ...Option) *Server {
	s := &Server{
		sched:          sched,
		params:         params,
		originPatterns: []string{"*"},
		pollInterval:   250 * time.Millisecond,
	}
	for _, o := range opts {
		o(s)
	}
	s.wsListener = NewWSListener(context.Background(), "/ws")
	s.irpcServer = irpc.NewServer(
		irpc.WithOnConnect(s.onConnect),
		irpc.WithServices(mandel.NewMapProviderIrpcService(sched)),
	)
	return s
}

// onConnect plugs every connected client into rendering.
func (s *Server) onConnect(ep *irpc.Endpoint) {
	go func() {
		log.Printf("got connection from: %s", ep.RemoteAddr())

		renderer, err := mandel.NewRendererIrpcClient(ep)
		if err != nil {
			log.Printf("err: new renderer client: %v", err)
			return
		}
		ev := mandel.RemoteEvaluator{Renderer: renderer, Params: s.params}
		if err := s.sched.Evaluate(ep.Context(), ev); err != nil {
			log.Printf("err: render on client %q: %v", ep.RemoteAddr(), err)
			return
		}
	}()
}

// Serve accepts irpc connections on l. It always returns a non-nil error.
// It can be called for several listeners in parallel.
func (s *Server) Serve(l net.Listener) error {
	return s.irpcServer.Serve(l)
}

// Listener returns the listener fed by the /ws endpoint. Pass it to Serve.
func (s *Server) Listener() net.Listener {
	return s.wsListener
}

// Close stops all listeners and drops every connection.
func (s *Server) Close() error {
	err := s.irpcServer.Close()
	s.wsListener.Close()
	return err
}

// Handler returns the HTTP handler with all endpoints registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/tiles", s.handleTiles)
	if s.staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	}
	return mux
}

// HTTPServer wraps Handler in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (s *Server) accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns,
	})
}

// handleWS passes the websocket to the irpc listener.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := s.accept(w, r)
	if err != nil {
		log.Println(err)
		return
	}
	if !s.wsListener.push(r.Context(), c) {
		c.Close(websocket.StatusGoingAway, "server closed")
	}
}

// handleTiles streams finished tiles to a viewer.
func (s *Server) handleTiles(w http.ResponseWriter, r *http.Request) {
	c, err := s.accept(w, r)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()
	c.SetReadLimit(tileproto.MessageLimit)

	// viewers only listen; CloseRead handles control frames and reports disconnects
	ctx := c.CloseRead(r.Context())
	if err := s.streamTiles(ctx, c); err != nil {
		log.Printf("tiles stream to %q: %v", r.RemoteAddr, err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "all tiles sent")
}

func (s *Server) streamTiles(ctx context.Context, c *websocket.Conn) error {
	width, height := s.sched.Dims()
	hello := tileproto.Message{Kind: tileproto.KindHello, Hello: &tileproto.Hello{
		Width:      width,
		Height:     height,
		TotalTiles: s.sched.TotalTiles(),
		MaxIter:    s.params.MaxIter,
	}}
	if err := wsjson.Write(ctx, c, hello); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}

	sent := make(map[image.Rectangle]struct{})
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		// read done before listing tiles so the final pass sees every tile
		done := isDone(s.sched.Done())
		finished := s.sched.FinishedTiles()
		for _, t := range finished {
			if _, ok := sent[t]; ok {
				continue
			}
			m, _ := s.sched.Tile(t)
			msg := tileproto.Message{Kind: tileproto.KindTile, Tile: &tileproto.TileUpdate{
				Rect:     tileproto.RectFrom(t),
				Counts:   m.Counts,
				Finished: len(finished),
				Workers:  s.sched.Workers(),
				Progress: s.sched.Progress(),
			}}
			if err := wsjson.Write(ctx, c, msg); err != nil {
				return fmt.Errorf("write tile %s: %w", t, err)
			}
			sent[t] = struct{}{}
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
		case <-s.sched.Done():
		}
	}
}

func isDone(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
