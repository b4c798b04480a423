package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

func main() {
	var (
		configFile = flag.String("config", "", "JSON configuration file, defaults are used when empty")
		schemaFile = flag.String("schema", "", "JSON schema of the configuration, the embedded one when empty")
		tps        = flag.Int("tps", 60, "simulation ticks per second")
		debug      = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stdout)

	cfg, err := simulation.Load(*configFile, *schemaFile)
	if err != nil {
		logger.Fatal(err)
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockView", actor.WithLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatal(err)
	}
	defer func() { _ = system.Stop(ctx) }()

	game, err := NewGame(ctx, system, cfg, *tps)
	if err != nil {
		logger.Fatal(err)
	}

	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Flocks")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error(err)
	}
}
