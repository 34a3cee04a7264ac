// Package tileproto defines the JSON tile stream sent by the tile server to
// viewers, and the client loop reading it.
package tileproto

import (
	"image"

	"github.com/marben/mandelplane/escape"
)

// MessageLimit bounds a single websocket message. A 64x64 tile of large counts
// is roughly 40 KiB of JSON.
const MessageLimit = 8 << 20

// Message kinds on the tile stream.
const (
	KindHello = "hello"
	KindTile  = "tile"
)

// Message is one frame of the tile stream: a Hello first, then one Tile per
// finished tile.
type Message struct {
	Kind  string      `json:"kind"`
	Hello *Hello      `json:"hello,omitempty"`
	Tile  *TileUpdate `json:"tile,omitempty"`
}

// Hello describes the image being rendered.
type Hello struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	TotalTiles int `json:"total_tiles"`
	MaxIter    int `json:"max_iter"`
}

// TileUpdate carries one finished tile plus the render progress at send time.
type TileUpdate struct {
	Rect     Rect    `json:"rect"`
	Counts   []int   `json:"counts"`
	Finished int     `json:"finished"`
	Workers  int     `json:"workers"`
	Progress float32 `json:"progress"`
}

// Rect is an image.Rectangle in wire form.
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// RectFrom converts an image.Rectangle to wire form.
func RectFrom(r image.Rectangle) Rect {
	return Rect{X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X, Y1: r.Max.Y}
}

// Rectangle converts r back to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X0, r.Y0, r.X1, r.Y1)
}

// Map returns the tile's escape times.
func (u TileUpdate) Map() escape.Map {
	r := u.Rect.Rectangle()
	return escape.Map{Rows: r.Dy(), Cols: r.Dx(), Counts: u.Counts}
}
