package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/assets"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(cat *catalog.Catalog, seed int64) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewSandboxScene(cat, seed),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Game.Width, config.Game.Height)
	return config.Game.Width, config.Game.Height
}

func main() {
	defs := flag.String("defs", config.Debug.Definitions, "Shot definition file")
	dir := flag.String("dir", "", "Load definitions from this directory instead of the bundled ones")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	assertions := flag.Bool("assertions", config.Debug.Assertions, "Panic on destroyed handle misuse")
	flag.Parse()

	config.Debug.Definitions = *defs
	config.Debug.Assertions = *assertions

	fsys := assets.Shots()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	cat, err := catalog.LoadFile(fsys, config.Debug.Definitions)
	if err != nil {
		log.Fatalf("Failed to load shot definitions: %v", err)
	}

	ebiten.SetWindowSize(config.Game.Width, config.Game.Height)
	ebiten.SetWindowTitle("Shot sandbox")
	ebiten.SetTPS(config.Game.TPS)

	if err := ebiten.RunGame(NewGame(cat, *seed)); err != nil {
		log.Fatal(err)
	}
}
