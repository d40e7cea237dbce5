package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes on top of the scene")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Int64("seed", 0, "random seed for debris placement (0 uses the clock)")
	specPath := flag.String("spec", prefabs.SwiperSpecFile, "scene spec in prefabs/")
	watch := flag.Bool("watch", false, "reload the scene spec when it changes on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("swiper")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(GameOptions{
		SpecPath: *specPath,
		Seed:     *seed,
		Debug:    *debug,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
