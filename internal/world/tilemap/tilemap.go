// Package tilemap loads tile maps whose tiles carry collider shapes.
//
// Maps and tilesets are JSON. Tile (0, 0) is the bottom-left tile of the map
// and world y grows upward, so rows are stored top row first and flipped on
// lookup.
package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/logging"
)

// MainLayer is the name of the layer collision queries read from.
const MainLayer = "main"

var (
	ErrMainLayerMissing = errors.New("main layer missing")
	ErrTooManyTilesets  = errors.New("map must reference exactly one tileset")
)

// TilesetRef points at a tileset file or carries the tileset inline.
type TilesetRef struct {
	Source string         `json:"source"` // Relative to the map file
	Inline *TilesetConfig `json:"inline"`
}

// LayerData is one layer of GIDs, row-major, top row first. GID 0 is empty.
type LayerData struct {
	Name  string   `json:"name"`
	Tiles []uint32 `json:"tiles"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name     string       `json:"name"`
	Columns  int          `json:"columns"`
	Rows     int          `json:"rows"`
	TileSize int          `json:"tile_size"` // World units per tile
	Tilesets []TilesetRef `json:"tilesets"`
	Layers   []LayerData  `json:"layers"`
}

// Map represents a loaded map with its tileset
type Map struct {
	Data    *MapData
	Tileset *Tileset
	tiles   []uint32
}

// TileRef is the result of a tile lookup.
type TileRef struct {
	Tileset *Tileset
	Tile    *Tile
	Index   uint32
}

// LoadMap loads a map and its tileset from a JSON file
func LoadMap(mapPath string, log *zap.Logger) (*Map, error) {
	log = logging.OrNop(log)

	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map file %s: %w", mapPath, err)
	}

	if len(mapData.Tilesets) != 1 {
		return nil, fmt.Errorf("%s: %w (got %d)", mapPath, ErrTooManyTilesets, len(mapData.Tilesets))
	}

	ref := mapData.Tilesets[0]
	var ts *Tileset
	switch {
	case ref.Inline != nil && ref.Source != "":
		return nil, fmt.Errorf("%s: %w (both source and inline given)", mapPath, ErrTooManyTilesets)
	case ref.Inline != nil:
		ts, err = NewTileset(ref.Inline, log)
	case ref.Source != "":
		ts, err = LoadTileset(filepath.Join(filepath.Dir(mapPath), ref.Source), log)
	default:
		return nil, fmt.Errorf("%s: tileset reference is empty", mapPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tileset for %s: %w", mapPath, err)
	}

	m, err := NewMap(&mapData, ts)
	if err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", mapPath, err)
	}

	log.Info("map loaded",
		zap.String("map", mapData.Name),
		zap.Int("columns", mapData.Columns),
		zap.Int("rows", mapData.Rows))

	return m, nil
}

// NewMap validates data and binds it to ts.
func NewMap(data *MapData, ts *Tileset) (*Map, error) {
	if err := validateMapData(data); err != nil {
		return nil, err
	}

	var main *LayerData
	for i := range data.Layers {
		if data.Layers[i].Name == MainLayer {
			main = &data.Layers[i]
			break
		}
	}
	if main == nil {
		return nil, ErrMainLayerMissing
	}

	for i, gid := range main.Tiles {
		if gid == 0 {
			continue
		}
		index, ok := ts.GIDToIndex(gid)
		if !ok {
			return nil, fmt.Errorf("gid %d at index %d is not in tileset %s", gid, i, ts.Config.Name)
		}
		if _, ok := ts.Tile(index); !ok {
			return nil, fmt.Errorf("gid %d at index %d has no tile %d in tileset %s", gid, i, index, ts.Config.Name)
		}
	}

	return &Map{Data: data, Tileset: ts, tiles: main.Tiles}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Columns <= 0 || data.Rows <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Columns, data.Rows)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	for _, layer := range data.Layers {
		if len(layer.Tiles) != data.Columns*data.Rows {
			return fmt.Errorf("layer %q size mismatch: expected %d tiles, got %d",
				layer.Name, data.Columns*data.Rows, len(layer.Tiles))
		}
	}

	return nil
}

// TileAt returns the tile at grid coordinates (x, y), with y counted up from
// the bottom row. Out-of-bounds and empty cells report false.
func (m *Map) TileAt(x, y int) (TileRef, bool) {
	if x < 0 || x >= m.Data.Columns || y < 0 || y >= m.Data.Rows {
		return TileRef{}, false
	}

	row := m.Data.Rows - y - 1
	gid := m.tiles[row*m.Data.Columns+x]
	if gid == 0 {
		return TileRef{}, false
	}

	index, ok := m.Tileset.GIDToIndex(gid)
	if !ok {
		return TileRef{}, false
	}
	tile, ok := m.Tileset.Tile(index)
	if !ok {
		return TileRef{}, false
	}
	return TileRef{Tileset: m.Tileset, Tile: tile, Index: index}, true
}

// TileOrigin returns the world position of tile (x, y)'s bottom-left corner,
// which is where its collider offsets are measured from.
func (m *Map) TileOrigin(x, y int) geom.P2 {
	size := float32(m.Data.TileSize)
	return geom.P2{X: float32(x) * size, Y: float32(y) * size}
}

// TileSize returns the world size of one tile.
func (m *Map) TileSize() float32 {
	return float32(m.Data.TileSize)
}
