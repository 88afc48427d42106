package level

import (
	"path/filepath"
	"testing"
)

const tinyLevel = `{
  "width": 2, "height": 1, "tilewidth": 48, "tileheight": 48,
  "layers": [
    {"name": "tilemap", "type": "tilelayer", "data": [7, 2]},
    {"name": "waypoints", "type": "objectgroup", "objects": [
      {"name": "path", "x": 24, "y": 24, "polyline": [{"x": 0, "y": 0}, {"x": 48, "y": 0}]}
    ]}
  ]
}`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(tinyLevel))
	if err != nil {
		t.Fatal(err)
	}
	if d.Width != 2 || d.TileWidth != 48 || len(d.Layers) != 2 {
		t.Fatalf("unexpected level %+v", d)
	}
	if got := d.Layers[0].Data; len(got) != 2 || got[1] != 2 {
		t.Fatalf("unexpected tile data %v", got)
	}

	points := d.Layers[1].Objects[0].AbsolutePolyline()
	want := []Point{{X: 24, Y: 24}, {X: 72, Y: 24}}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], points[i])
		}
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestLoadEmbedded(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, l := range d.Layers {
		names[l.Name] = true
	}
	if !names[TilemapLayer] || !names[WaypointsLayer] {
		t.Fatalf("embedded level is missing layers: %v", names)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.tmj")); err == nil {
		t.Fatalf("expected an error")
	}
}
