package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/animake/anim"
	"github.com/milk9111/animake/animfile"
	"github.com/milk9111/animake/config"
	"github.com/milk9111/animake/playback"
	"github.com/milk9111/animake/render"
)

const screenSize = 512

type previewGame struct {
	cat   *anim.Catalog
	sheet *ebiten.Image
	clip  int
	clock *playback.Clock
	scale float64
	bg    color.RGBA
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.selectClip(g.clip + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.selectClip(g.clip - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.clock.SetSpeedRate(g.clock.SpeedRate * 2)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.clock.SetSpeedRate(g.clock.SpeedRate / 2)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.clock.Reset()
	}
	g.clock.Advance(&g.cat.Clips[g.clip], 1/float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) selectClip(i int) {
	n := g.cat.Len()
	g.clip = (i%n + n) % n
	g.clock.Reset()
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	clip := g.cat.Clips[g.clip]
	r := clip.SourceRect(g.clock.Index())
	x := (screenSize - r.Width*g.scale) / 2
	y := (screenSize - r.Height*g.scale) / 2
	render.DrawPattern(screen, g.sheet, r, x, y, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d/%d)  %s\nleft/right clip, up/down speed, space restart",
		g.cat.Names[g.clip], g.clip+1, g.cat.Len(), g.clock))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	cfgPath := flag.String("config", config.DefaultFile, "Settings file (YAML)")
	dir := flag.String("dir", "", "Working directory (overrides the settings file)")
	clipName := flag.String("clip", "", "Clip to start with (default: first)")
	scale := flag.Float64("scale", 2, "Display scale")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: preview [flags] <catalog.anim|catalog.txt>")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}
	if *dir != "" {
		cfg.Dir = *dir
	}
	store := animfile.Store{Dir: cfg.Dir}

	cat, loc, err := store.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	if err := cat.Validate(); err != nil {
		log.Fatalf("Unusable catalog %s: %v", loc.Binary, err)
	}
	sheet, err := render.LoadImage(store.Abs(cat.TextureFile))
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}

	clock := playback.NewClock()
	clock.SetSpeedRate(cfg.SpeedRate)
	clock.FixedStep = cfg.FixedStep
	g := &previewGame{cat: cat, sheet: sheet, clock: clock, scale: *scale, bg: cfg.BackgroundColor()}
	if *clipName != "" {
		if i := cat.IndexOf(*clipName); i >= 0 {
			g.clip = i
		} else {
			log.Printf("No clip named %q; starting with %q", *clipName, cat.Names[0])
		}
	}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("animake preview - " + loc.Binary)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
