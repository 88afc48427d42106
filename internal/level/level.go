// internal/level/level.go
package level

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/level.tmj
var levelFS embed.FS

const (
	defaultLevelPath = "data/level.tmj"

	TilemapLayer   = "tilemap"
	WaypointsLayer = "waypoints"
)

// Data: уровень в формате Tiled: набор именованных слоёв.
type Data struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	TileWidth  int     `json:"tilewidth"`
	TileHeight int     `json:"tileheight"`
	Layers     []Layer `json:"layers"`
}

// Layer: слой тайлов ("tilemap") или объектов ("waypoints").
type Layer struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Data    []int    `json:"data,omitempty"`
	Objects []Object `json:"objects,omitempty"`
}

// Object: объект слоя. Точки полилинии заданы относительно (X, Y) объекта.
type Object struct {
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Polyline []Point `json:"polyline,omitempty"`
}

// Point: сырая точка {x, y}.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AbsolutePolyline возвращает точки полилинии с учётом смещения объекта.
func (o Object) AbsolutePolyline() []Point {
	points := make([]Point, len(o.Polyline))
	for i, p := range o.Polyline {
		points[i] = Point{X: p.X + o.X, Y: p.Y + o.Y}
	}
	return points
}

// Load читает уровень из файла, либо встроенный уровень, если путь пуст.
func Load(path string) (*Data, error) {
	var (
		raw []byte
		err error
	)
	if path == "" {
		raw, err = levelFS.ReadFile(defaultLevelPath)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	return Parse(raw)
}

// Parse разбирает JSON уровня. Проверку содержимого слоёв не делает.
func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return &d, nil
}
