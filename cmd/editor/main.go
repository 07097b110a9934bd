package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animake/config"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "Settings file (YAML); created on first save")
	dir := flag.String("dir", "", "Working directory for catalogs and textures (overrides the settings file)")
	file := flag.String("file", "", "Catalog to open at start (.anim or .txt)")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	if *dir != "" {
		cfg.Dir = *dir
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("animake")

	editor, err := NewEditor(cfg, *cfgPath)
	if err != nil {
		log.Fatalf("Failed to build editor: %v", err)
	}
	defer editor.Close()

	start := *file
	if start == "" {
		start = cfg.LastFile
	}
	if start != "" {
		editor.open(start)
	}

	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
