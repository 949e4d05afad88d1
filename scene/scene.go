package scene

import (
	"fmt"

	"github.com/quietloop/nightmarket/chapters"
	"github.com/quietloop/nightmarket/movement"
	"github.com/quietloop/nightmarket/story"
	"github.com/quietloop/nightmarket/world"
)

// Sound is the narrow audio contract: opaque slot names only.
type Sound interface {
	Play(name string)
	Stop(name string)
	Loop(name string, on bool)
}

// nopSound keeps scenes runnable without an audio device.
type nopSound struct{}

func (nopSound) Play(string)       {}
func (nopSound) Stop(string)       {}
func (nopSound) Loop(string, bool) {}

type zone struct {
	name string
	rect world.Wall
}

// Scene drives one chapter: it steps the movement controller, checks the
// player position against its trigger zones, and lets the chapter script
// mutate the story store. It owns its controller state for exactly one
// mount; remounting starts fresh.
type Scene struct {
	spec   *chapters.Spec
	layout *world.Layout
	ctrl   *movement.Controller
	script *Script
	store  *story.Store
	sound  Sound
	zones  []zone

	x, z float64
	pose movement.Pose
}

// New mounts a scene from a chapter spec. The store is required; a nil
// sound provider degrades to silence.
func New(spec *chapters.Spec, store *story.Store, sound Sound) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("scene: nil spec")
	}
	if store == nil {
		return nil, fmt.Errorf("scene: nil store")
	}
	if sound == nil {
		sound = nopSound{}
	}

	s := &Scene{spec: spec, store: store, sound: sound}

	cellSize := spec.CellSize
	if cellSize <= 0 {
		cellSize = world.DefaultCellSize
	}

	var walls world.Walls
	var bounds *world.Wall
	startX, startZ := 0.0, 0.0
	if len(spec.Layout) > 0 {
		layout, err := world.ParseLayout(spec.Layout, cellSize)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", spec.Name, err)
		}
		s.layout = layout
		walls = layout.Walls
		b := layout.Bounds()
		bounds = &b
		start := layout.CellCenter(layout.Start)
		startX, startZ = start.X, start.Y
		cellSize = layout.CellSize
	}
	if spec.Bounds != nil {
		b := world.NewWall(spec.Bounds.MinX, spec.Bounds.MaxX, spec.Bounds.MinZ, spec.Bounds.MaxZ)
		bounds = &b
		if s.layout == nil {
			startX = (b.L + b.R) / 2
			startZ = (b.B + b.T) / 2
		}
	}

	cfg := movement.Config{
		Mode:       buildMode(spec, cellSize),
		Walls:      walls,
		Bounds:     bounds,
		OnPosition: func(x, z float64) { s.x, s.z = x, z },
	}
	s.ctrl = movement.NewController(cfg, startX, startZ, spec.StartFacing.Yaw())
	s.x, s.z = startX, startZ

	for _, zs := range spec.Zones {
		cols, rows := zs.Cols, zs.Rows
		if cols <= 0 {
			cols = 1
		}
		if rows <= 0 {
			rows = 1
		}
		s.zones = append(s.zones, zone{
			name: zs.Name,
			rect: world.NewWall(
				float64(zs.Col)*cellSize,
				float64(zs.Col+cols)*cellSize,
				float64(zs.Row)*cellSize,
				float64(zs.Row+rows)*cellSize,
			),
		})
	}

	if spec.Script != "" {
		src, err := chapters.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", spec.Name, err)
		}
		script, err := NewScript(src, s)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: compile %s: %w", spec.Name, spec.Script, err)
		}
		s.script = script
	}

	for _, loop := range spec.Loops {
		s.sound.Loop(loop, true)
	}

	return s, nil
}

func buildMode(spec *chapters.Spec, cellSize float64) movement.Mode {
	feel := spec.Movement
	mode := movement.Mode{}

	if spec.Mode == "grid" {
		mode.Kind = movement.KindGrid
		mode.Grid = movement.GridParams{
			CellSize:  cellSize,
			Cooldown:  orDefault(feel.Cooldown, 0.3),
			Smoothing: orDefault(feel.Smoothing, 8),
		}
	} else {
		mode.Kind = movement.KindContinuous
		mode.Continuous = movement.ContinuousParams{
			Accel:    orDefault(feel.Accel, 12),
			Friction: orDefault(feel.Friction, 6),
			MaxSpeed: orDefault(feel.MaxSpeed, 3),
			Quantum:  orDefault(feel.Quantum, 0.05),
		}
	}

	if spec.Camera == "third" {
		mode.Camera = movement.ThirdPerson
	}
	switch spec.Avatar {
	case "tracked":
		mode.Avatar = movement.AvatarAtTracked
	case "forward":
		mode.Avatar = movement.AvatarForwardOfCamera
	case "behind":
		mode.Avatar = movement.AvatarBehindCamera
	}
	return mode
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Step advances the scene by one simulation step.
func (s *Scene) Step(in movement.Input, dt float64) {
	s.pose = s.ctrl.Step(in, dt)

	// Steering tally for the chapter puzzles that read a bias out of it.
	if in.Left && !in.Right {
		s.store.AddMovement("left", dt)
	}
	if in.Right && !in.Left {
		s.store.AddMovement("right", dt)
	}

	if s.script != nil {
		if err := s.script.Run(); err != nil {
			fmt.Printf("scene: %s script error: %v\n", s.spec.Name, err)
		}
	}
}

// Close releases everything the mount created; here that is the looping
// sound slots.
func (s *Scene) Close() {
	for _, loop := range s.spec.Loops {
		s.sound.Loop(loop, false)
	}
}

// InZone reports whether the player is currently inside the named zone.
func (s *Scene) InZone(name string) bool {
	for _, z := range s.zones {
		if z.name != name {
			continue
		}
		if s.x >= z.rect.L && s.x <= z.rect.R && s.z >= z.rect.B && s.z <= z.rect.T {
			return true
		}
	}
	return false
}

// Position returns the last reported player position.
func (s *Scene) Position() (x, z float64) {
	return s.x, s.z
}

// Pose returns the camera pose from the latest step.
func (s *Scene) Pose() movement.Pose {
	return s.pose
}

// Spec returns the chapter spec this scene was mounted from.
func (s *Scene) Spec() *chapters.Spec {
	return s.spec
}

// Layout returns the parsed maze layout, nil for open floors.
func (s *Scene) Layout() *world.Layout {
	return s.layout
}
