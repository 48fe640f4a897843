package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/platformer/internal/sampledata"
)

func main() {
	dir := flag.String("out", "data", "directory to write into")
	columns := flag.Int("columns", 24, "cave width in tiles")
	rows := flag.Int("rows", 12, "cave height in tiles")
	flag.Parse()

	fmt.Println("Sample Data Generator")
	fmt.Println("=====================")

	if err := sampledata.Generate(*dir, *columns, *rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s, %s and %s to %s\n", sampledata.TilesetFile, sampledata.MapFile, sampledata.SceneFile, *dir)
	fmt.Println("Run geomview -scene " + *dir + "/" + sampledata.SceneFile + " to view it.")
}
