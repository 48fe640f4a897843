// Package sampledata writes a small demo tileset, cave map and debug scene.
package sampledata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/platformer/internal/scene"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// TileSize is the size of every demo tile in world units
const TileSize = 16

// File names written by Generate
const (
	TilesetFile = "tileset.json"
	MapFile     = "cave.json"
	SceneFile   = "scene.yaml"
)

// Tile ids in the demo tileset
const (
	TileSolid uint32 = iota
	TileSlopeUp
	TileSlopeDown
	TilePlatform
	TileDecor
)

// Tileset returns the demo tileset: a solid block, two slopes, a thin one-way
// platform and a decoration tile without colliders.
func Tileset() *tilemap.TilesetConfig {
	full := tilemap.ColliderObject{Type: "rect", Width: TileSize, Height: TileSize}
	return &tilemap.TilesetConfig{
		Name:       "cave",
		FirstGID:   1,
		TileWidth:  TileSize,
		TileHeight: TileSize,
		Tiles: []tilemap.TileDefinition{
			{ID: TileSolid, Name: "rock", Colliders: []tilemap.ColliderObject{full}},
			{ID: TileSlopeUp, Name: "slope_up", Colliders: []tilemap.ColliderObject{{
				Type:   "polygon",
				Points: [][2]float32{{0, 0}, {TileSize, 0}, {TileSize, TileSize}},
			}}},
			{ID: TileSlopeDown, Name: "slope_down", Colliders: []tilemap.ColliderObject{{
				Type:   "polygon",
				Points: [][2]float32{{0, 0}, {TileSize, 0}, {0, TileSize}},
			}}},
			{
				ID:         TilePlatform,
				Name:       "platform",
				Properties: map[string]interface{}{"one_way": true},
				Colliders: []tilemap.ColliderObject{{
					Type: "rect", Y: TileSize - 4, Width: TileSize, Height: 4,
				}},
			},
			{ID: TileDecor, Name: "moss"},
		},
	}
}

// Map returns a walled cave of the given size with a floor, a ramp and a
// floating platform. Rows are listed top row first.
func Map(columns, rows int) *tilemap.MapData {
	gid := func(id uint32) uint32 { return id + 1 }
	tiles := make([]uint32, columns*rows)
	set := func(x, y int, id uint32) {
		// y counts up from the bottom row
		tiles[(rows-y-1)*columns+x] = gid(id)
	}

	for x := 0; x < columns; x++ {
		set(x, 0, TileSolid)
		set(x, rows-1, TileSolid)
	}
	for y := 0; y < rows; y++ {
		set(0, y, TileSolid)
		set(columns-1, y, TileSolid)
	}

	if columns >= 8 && rows >= 6 {
		set(2, 1, TileSlopeUp)
		set(3, 1, TileSolid)
		set(3, 2, TileSlopeUp)
		set(4, 1, TileSolid)
		set(4, 2, TileSolid)
		set(5, 2, TileSlopeDown)
		set(5, 1, TileSolid)
		for x := columns / 2; x < columns-2; x++ {
			set(x, rows/2, TilePlatform)
		}
		set(1, rows-2, TileDecor)
	}

	return &tilemap.MapData{
		Name:     "cave",
		Columns:  columns,
		Rows:     rows,
		TileSize: TileSize,
		Tilesets: []tilemap.TilesetRef{{Source: TilesetFile}},
		Layers:   []tilemap.LayerData{{Name: tilemap.MainLayer, Tiles: tiles}},
	}
}

// Scene returns a debug scene over the demo map.
func Scene(columns, rows int) *scene.Config {
	w := float32(columns * TileSize)
	h := float32(rows * TileSize)
	cfg := scene.DefaultConfig()
	cfg.Window.Scale = 2
	cfg.Map = MapFile
	cfg.Probe = scene.LineConfig{From: scene.Vec{w / 2, h / 2}, Dir: scene.Vec{1, 1}}
	cfg.Lines = []scene.LineConfig{{From: scene.Vec{0, h / 3}, Dir: scene.Vec{1, 0}}}
	cfg.Rays = []scene.LineConfig{{From: scene.Vec{w / 4, h - TileSize*2}, Dir: scene.Vec{1, -1}}}
	cfg.Segments = []scene.SegmentConfig{{From: scene.Vec{w * 0.75, TileSize}, To: scene.Vec{w * 0.75, h - TileSize}}}
	cfg.Shapes = []scene.ShapeConfig{
		{Name: "player", At: scene.Vec{w / 3, TileSize}, Rect: &[4]float32{-8, 0, 16, 16}},
		{Name: "crate", At: scene.Vec{w * 0.6, TileSize * 3}, Verts: []scene.Vec{{0, 0}, {12, 0}, {12, 12}, {0, 12}}},
	}
	return cfg
}

// Generate writes the tileset, map and scene into dir.
func Generate(dir string, columns, rows int) error {
	if columns < 3 || rows < 3 {
		return fmt.Errorf("cave must be at least 3x3, got %dx%d", columns, rows)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := writeJSON(filepath.Join(dir, TilesetFile), Tileset()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, MapFile), Map(columns, rows)); err != nil {
		return err
	}

	data, err := yaml.Marshal(Scene(columns, rows))
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, SceneFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
