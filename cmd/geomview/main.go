package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/platformer/internal/logging"
	ebitenrender "chosenoffset.com/platformer/internal/render/ebiten"
	"chosenoffset.com/platformer/internal/viewer"
)

func main() {
	scenePath := flag.String("scene", "data/scene.yaml", "scene file to display")
	mapPath := flag.String("map", "", "tile map to overlay, overriding the scene's map")
	flag.Parse()

	log, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	assets, err := viewer.Load(context.Background(), *scenePath, *mapPath, log)
	if err != nil {
		log.Fatal("failed to load assets", zap.Error(err))
	}

	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	v := viewer.New(assets, inputMgr, log)

	engine.SetWindowSize(assets.Config.Window.Width, assets.Config.Window.Height)
	engine.SetWindowTitle("geomview")
	engine.SetWindowResizable(true)

	log.Info("starting viewer")
	if err := engine.RunGame(v); err != nil {
		log.Fatal("viewer stopped", zap.Error(err))
	}
}
