package tilemap

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/platformer/internal/core/geom"
	"chosenoffset.com/platformer/internal/logging"
)

// ColliderObject is one collision primitive attached to a tile, in tile-local
// pixel coordinates.
type ColliderObject struct {
	Type   string       `json:"type"` // "rect" or "polygon"
	X      float32      `json:"x"`
	Y      float32      `json:"y"`
	Width  float32      `json:"width"`  // rect only
	Height float32      `json:"height"` // rect only
	Points [][2]float32 `json:"points"` // polygon only, relative to (X, Y)
}

// TileDefinition defines a single tile within a tileset
type TileDefinition struct {
	ID         uint32                 `json:"id"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"` // Custom properties (type, one_way, etc.)
	Colliders  []ColliderObject       `json:"colliders"`
}

// TilesetConfig defines the JSON configuration for a tileset
type TilesetConfig struct {
	Name       string           `json:"name"`
	FirstGID   uint32           `json:"first_gid"`   // GID of the tile with id 0
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`
}

// Tile is a tile definition with its collider resolved into a shape.
type Tile struct {
	Def *TileDefinition
	// Collider holds every collider vertex of the tile, object after object.
	Collider geom.Shape
	// Parts holds one shape per collider object.
	Parts []geom.Shape
}

// Tileset is a loaded tileset
type Tileset struct {
	Config *TilesetConfig
	tiles  map[uint32]*Tile
	maxID  uint32
}

// LoadTileset loads a tileset from a JSON configuration file
func LoadTileset(path string, log *zap.Logger) (*Tileset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tileset %s: %w", path, err)
	}

	var config TilesetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tileset %s: %w", path, err)
	}

	ts, err := NewTileset(&config, log)
	if err != nil {
		return nil, fmt.Errorf("invalid tileset %s: %w", path, err)
	}
	return ts, nil
}

// NewTileset validates config and resolves every tile's colliders.
// Collider objects of an unknown type are skipped with a warning.
func NewTileset(config *TilesetConfig, log *zap.Logger) (*Tileset, error) {
	log = logging.OrNop(log)

	if config.TileWidth <= 0 || config.TileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", config.TileWidth, config.TileHeight)
	}
	if config.FirstGID == 0 {
		return nil, fmt.Errorf("first_gid must be at least 1")
	}

	ts := &Tileset{
		Config: config,
		tiles:  make(map[uint32]*Tile, len(config.Tiles)),
	}

	for i := range config.Tiles {
		def := &config.Tiles[i]
		if _, dup := ts.tiles[def.ID]; dup {
			return nil, fmt.Errorf("duplicate tile id %d", def.ID)
		}

		tile := &Tile{Def: def}
		for _, obj := range def.Colliders {
			part, ok := colliderShape(obj)
			if !ok {
				log.Warn("bad collider shape",
					zap.String("tileset", config.Name),
					zap.Uint32("tile", def.ID),
					zap.String("type", obj.Type))
				continue
			}
			tile.Parts = append(tile.Parts, part)
			tile.Collider = tile.Collider.Append(part)
		}

		ts.tiles[def.ID] = tile
		if def.ID > ts.maxID {
			ts.maxID = def.ID
		}
	}

	log.Debug("tileset loaded",
		zap.String("tileset", config.Name),
		zap.Int("tiles", len(ts.tiles)))

	return ts, nil
}

func colliderShape(obj ColliderObject) (geom.Shape, bool) {
	switch obj.Type {
	case "rect":
		return geom.NewRectShape(obj.X, obj.Y, obj.Width, obj.Height), true
	case "polygon":
		verts := make([]geom.V2, len(obj.Points))
		for i, p := range obj.Points {
			verts[i] = geom.V2{X: obj.X + p[0], Y: obj.Y + p[1]}
		}
		return geom.NewShape(verts), true
	default:
		return geom.Shape{}, false
	}
}

// GIDToIndex converts a map GID into a tile id within this tileset.
func (ts *Tileset) GIDToIndex(gid uint32) (uint32, bool) {
	if gid < ts.Config.FirstGID {
		return 0, false
	}
	index := gid - ts.Config.FirstGID
	if index > ts.maxID {
		return 0, false
	}
	return index, true
}

// Tile returns the tile with the given id
func (ts *Tileset) Tile(id uint32) (*Tile, bool) {
	tile, ok := ts.tiles[id]
	return tile, ok
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	if val, ok := td.GetTileProperty(key); ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	if val, ok := td.GetTileProperty(key); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}

// GetTilePropertyInt retrieves an integer property
func (td *TileDefinition) GetTilePropertyInt(key string, defaultVal int) int {
	if val, ok := td.GetTileProperty(key); ok {
		// JSON numbers are float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return defaultVal
}
