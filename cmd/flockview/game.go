package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tochemey/goakt/v3/actor"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
)

const (
	screenSize    = 800
	pixelsPerUnit = 4.0 // world [-100, 100] fills the window
)

var flockColors = []color.RGBA{
	{R: 100, G: 200, B: 255, A: 255},
	{R: 255, G: 120, B: 80, A: 255},
	{R: 140, G: 230, B: 110, A: 255},
	{R: 230, G: 200, B: 60, A: 255},
	{R: 200, G: 120, B: 255, A: 255},
	{R: 240, G: 240, B: 240, A: 255},
}

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	ctx        context.Context
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	cfg        *simulation.Config
	dt         float64
	paused     bool

	// UI Controls
	panel   *ui.Panel
	toggles []*ui.Checkbox

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

func NewGame(ctx context.Context, system actor.ActorSystem, cfg *simulation.Config, tps int) (*Game, error) {
	snapshotCh := make(chan *pb.WorldSnapshot, 10) // Buffer to avoid blocking

	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
		dt:         1 / float64(tps),
		panel:      ui.NewPanel(10, 10, 170, "Flocks"),
	}

	for i := 0; i < cfg.FlockCount; i++ {
		c := g.panel.AddCheckbox(fmt.Sprintf("Flock %d", i), cfg.StartActive, flockColor(i))
		c.OnChange = func(active bool) {
			g.tell(&pb.SetActive{Flock: int32(i), Active: active})
		}
		g.toggles = append(g.toggles, c)
	}
	g.panel.AddButton("All on", func() { g.setAll(true) })
	g.panel.AddButton("All off", func() { g.setAll(false) })
	return g, nil
}

func (g *Game) tell(msg *pb.SetActive) {
	_ = actor.Tell(g.ctx, g.worldPID, msg)
}

func (g *Game) setAll(active bool) {
	for _, c := range g.toggles {
		c.Value = active
	}
	g.tell(&pb.SetActive{Flock: simulation.AllFlocks, Active: active})
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	// Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.panel.Contains(mx, my) {
			// the turret sits at the world origin
			x, z := toWorld(float64(mx), float64(my))
			err := actor.Tell(g.ctx, g.worldPID, &pb.FireProjectile{
				Origin:    &pb.Vector3{Y: g.cfg.Flock.SpawnAltitude},
				Direction: &pb.Vector3{X: x, Z: z},
			})
			if err != nil {
				return err
			}
		}
	}

	if g.paused {
		return nil
	}
	return actor.Tell(g.ctx, g.worldPID, &pb.Tick{DeltaTime: g.dt})
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(elapsed.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	cx, cy := toScreen(0, 0)
	vector.StrokeCircle(screen, cx, cy, float32(g.cfg.Projectile.Range*pixelsPerUnit), 1,
		color.RGBA{R: 80, G: 80, B: 90, A: 255}, true)
	vector.StrokeCircle(screen, cx, cy, float32(flock.GlobalCenterRadius*pixelsPerUnit), 1,
		color.RGBA{R: 60, G: 120, B: 60, A: 255}, true)
	vector.FillCircle(screen, cx, cy, 4, color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)

	for _, a := range g.lastState.GetAgents() {
		if a.GetDead() {
			continue
		}
		drawAgent(screen, a, flockColor(int(a.GetFlock())))
	}

	g.panel.Draw(screen)

	state := "running"
	if g.paused {
		state = "paused (space)"
	}
	msg := fmt.Sprintf("Tick: %d  %s\nAlive: %d  Dead: %d\nProjectiles: %d\n\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		g.lastState.GetTick(), state,
		g.lastState.GetAliveCount(), g.lastState.GetDeadCount(),
		g.lastState.GetProjectileCount(),
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, screenSize-170, 10)
	ebitenutil.DebugPrintAt(screen, "click: fire from the center", 10, screenSize-20)
}

func (g *Game) Layout(w, h int) (int, int) { return screenSize, screenSize }

// drawAgent plots a top-down triangle pointing along the agent velocity.
func drawAgent(screen *ebiten.Image, a *pb.AgentState, clr color.RGBA) {
	x, y := toScreen(a.GetPosition().GetX(), a.GetPosition().GetZ())
	// screen Y grows downward while world Z grows upward
	angle := math.Atan2(-a.GetVelocity().GetZ(), a.GetVelocity().GetX())

	r, gr, b := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
	vertex := func(da, length float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX:   x + float32(math.Cos(angle+da)*length),
			DstY:   y + float32(math.Sin(angle+da)*length),
			SrcX:   1,
			SrcY:   1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
		}
	}
	vertices := []ebiten.Vertex{vertex(0, 7), vertex(2.5, 5), vertex(-2.5, 5)}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func flockColor(i int) color.RGBA {
	return flockColors[i%len(flockColors)]
}

func toScreen(x, z float64) (float32, float32) {
	return float32(screenSize/2 + x*pixelsPerUnit), float32(screenSize/2 - z*pixelsPerUnit)
}

func toWorld(sx, sy float64) (float64, float64) {
	return (sx - screenSize/2) / pixelsPerUnit, (screenSize/2 - sy) / pixelsPerUnit
}
