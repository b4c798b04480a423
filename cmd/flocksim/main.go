package main

import (
	"context"
	"flag"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
)

// shooterRadius is the circle the headless shooter walks on, aiming at the
// world origin.
const shooterRadius = 50.0

func main() {
	var (
		configFile = flag.String("config", "", "JSON configuration file, defaults are used when empty")
		schemaFile = flag.String("schema", "", "JSON schema of the configuration, the embedded one when empty")
		ticks      = flag.Int("ticks", 600, "number of ticks to simulate")
		tps        = flag.Int("tps", 60, "simulation ticks per second")
		realtime   = flag.Bool("realtime", false, "pace ticks on the wall clock instead of running flat out")
		fireEvery  = flag.Int("fire-every", 30, "fire a projectile every n ticks, 0 disables shooting")
		dump       = flag.Bool("dump", false, "print the final world snapshot as JSON on stdout")
		debug      = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stderr)

	cfg, err := simulation.Load(*configFile, *schemaFile)
	if err != nil {
		logger.Fatal(err)
	}
	if *tps <= 0 {
		logger.Fatalf("tps must be positive, got %d", *tps)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	system, err := actor.NewActorSystem("FlockSim", actor.WithLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatal(err)
	}
	defer func() { _ = system.Stop(context.Background()) }()

	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(nil, cfg))
	if err != nil {
		logger.Fatal(err)
	}

	var pace <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(time.Second / time.Duration(*tps))
		defer ticker.Stop()
		pace = ticker.C
	}

	dt := 1 / float64(*tps)
	start := time.Now()
	sent := 0
loop:
	for sent < *ticks {
		if pace != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-pace:
			}
		} else if ctx.Err() != nil {
			break
		}

		sent++
		if *fireEvery > 0 && sent%*fireEvery == 0 {
			if err := actor.Tell(ctx, worldPID, shot(sent)); err != nil {
				logger.Error(err)
			}
		}
		if err := actor.Tell(ctx, worldPID, &pb.Tick{DeltaTime: dt}); err != nil {
			logger.Error(err)
			break
		}
	}

	// Ask waits behind every tick still queued in the mailbox
	reply, err := actor.Ask(context.Background(), worldPID, &pb.GetSnapshot{}, time.Minute)
	if err != nil {
		logger.Fatal(err)
	}
	snapshot, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		logger.Fatalf("unexpected reply %T", reply)
	}
	logger.Infof("simulated %d ticks (%.1f s of world time) in %s: %d alive, %d dead",
		snapshot.GetTick(), float64(snapshot.GetTick())*dt, time.Since(start).Round(time.Millisecond),
		snapshot.GetAliveCount(), snapshot.GetDeadCount())

	if *dump {
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(snapshot)
		if err != nil {
			logger.Fatal(err)
		}
		_, _ = os.Stdout.Write(append(b, '\n'))
	}
}

// shot walks the shooter around the origin and aims it at the center,
// where the flocks gather.
func shot(n int) *pb.FireProjectile {
	angle := float64(n) * 0.7
	x, z := shooterRadius*math.Cos(angle), shooterRadius*math.Sin(angle)
	return &pb.FireProjectile{
		Origin:    &pb.Vector3{X: x, Y: 1.5, Z: z},
		Direction: &pb.Vector3{X: -x, Z: -z},
	}
}
