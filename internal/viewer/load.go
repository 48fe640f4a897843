package viewer

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/platformer/internal/logging"
	"chosenoffset.com/platformer/internal/scene"
	"chosenoffset.com/platformer/internal/world/tilemap"
)

// Assets is everything the viewer loads from disk.
type Assets struct {
	Config *scene.Config
	Scene  *scene.Scene
	Map    *tilemap.Map // nil when no map is configured
}

// Load reads the scene at scenePath and the tile map concurrently. mapPath
// overrides the scene's own map entry; when it is empty the scene's entry is
// resolved relative to the scene file.
func Load(ctx context.Context, scenePath, mapPath string, log *zap.Logger) (*Assets, error) {
	log = logging.OrNop(log)
	assets := &Assets{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cfg, err := scene.LoadConfig(scenePath)
		if err != nil {
			return err
		}
		s, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("invalid scene %s: %w", scenePath, err)
		}
		assets.Config, assets.Scene = cfg, s
		log.Info("scene loaded",
			zap.String("path", scenePath),
			zap.Int("linears", len(s.Linears())),
			zap.Int("shapes", len(s.Shapes)))

		if mapPath != "" || cfg.Map == "" {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := tilemap.LoadMap(filepath.Join(filepath.Dir(scenePath), cfg.Map), log)
		if err != nil {
			return err
		}
		assets.Map = m
		return nil
	})

	if mapPath != "" {
		g.Go(func() error {
			m, err := tilemap.LoadMap(mapPath, log)
			if err != nil {
				return err
			}
			assets.Map = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
