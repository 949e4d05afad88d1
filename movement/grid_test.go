package movement

import (
	"math"
	"testing"

	"github.com/quietloop/nightmarket/common"
	"github.com/quietloop/nightmarket/world"
)

func gridConfig() Config {
	return Config{
		Mode: Mode{
			Kind: KindGrid,
			Grid: GridParams{
				CellSize:  2,
				Cooldown:  0.3,
				Smoothing: 8,
			},
		},
	}
}

// press feeds one rising-edge step followed by enough idle steps to clear
// the cooldown.
func press(c *Controller, in Input) {
	c.Step(in, testDT)
	for i := 0; i < 10; i++ {
		c.Step(Input{}, testDT)
	}
}

func TestGridFourTurnsReturnFacing(t *testing.T) {
	c := NewController(gridConfig(), 1, 1, 0)

	for i := 0; i < 4; i++ {
		press(c, Input{Right: true})
	}
	if got := common.WrapAngle(c.TargetYaw()); math.Abs(got) > 1e-9 {
		t.Fatalf("four right turns should return to facing 0, got %v", got)
	}

	// Let the smoothing settle and check the displayed yaw converged too.
	for i := 0; i < 200; i++ {
		c.Step(Input{}, testDT)
	}
	if got := common.WrapAngle(c.State().Yaw); math.Abs(got) > 1e-3 {
		t.Fatalf("smoothed yaw = %v did not converge to 0", got)
	}
}

func TestGridCooldownGatesCommits(t *testing.T) {
	c := NewController(gridConfig(), 1, 1, 0)

	// Two rising edges one step apart; the second lands inside the
	// cooldown window and must be dropped.
	c.Step(Input{Right: true}, testDT)
	c.Step(Input{}, testDT)
	c.Step(Input{Right: true}, testDT)

	if got := c.TargetYaw(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("target yaw = %v, want single quarter turn", got)
	}
}

func TestGridHeldKeyDoesNotRepeat(t *testing.T) {
	c := NewController(gridConfig(), 1, 1, 0)

	// Holding forward far past the cooldown must still commit exactly one
	// cell; repeats need a fresh rising edge.
	for i := 0; i < 200; i++ {
		c.Step(Input{Forward: true}, testDT)
	}

	s := c.State()
	if math.Abs(s.Pos.X-1) > 1e-3 || math.Abs(s.Pos.Y-(-1)) > 1e-3 {
		t.Fatalf("pos = %+v, want glide to exactly one cell forward (1, -1)", s.Pos)
	}
}

func TestGridMoveAlongFacing(t *testing.T) {
	c := NewController(gridConfig(), 1, 1, 0)

	press(c, Input{Right: true}) // face +X
	press(c, Input{Forward: true})
	for i := 0; i < 200; i++ {
		c.Step(Input{}, testDT)
	}

	s := c.State()
	if math.Abs(s.Pos.X-3) > 1e-3 || math.Abs(s.Pos.Y-1) > 1e-3 {
		t.Fatalf("pos = %+v, want (3, 1) after turning right and stepping", s.Pos)
	}

	press(c, Input{Back: true})
	for i := 0; i < 200; i++ {
		c.Step(Input{}, testDT)
	}
	s = c.State()
	if math.Abs(s.Pos.X-1) > 1e-3 || math.Abs(s.Pos.Y-1) > 1e-3 {
		t.Fatalf("pos = %+v, want back at (1, 1)", s.Pos)
	}
}

func TestGridBlockedMoveRejected(t *testing.T) {
	cfg := gridConfig()
	// Solid cell directly forward of the start.
	cfg.Walls = world.Walls{world.NewWall(0, 2, -2, 0)}
	c := NewController(cfg, 1, 1, 0)

	press(c, Input{Forward: true})
	for i := 0; i < 200; i++ {
		c.Step(Input{}, testDT)
	}

	s := c.State()
	if math.Abs(s.Pos.X-1) > 1e-3 || math.Abs(s.Pos.Y-1) > 1e-3 {
		t.Fatalf("pos = %+v, blocked move must not slide at all", s.Pos)
	}
}

func TestGridBoundsRejectMove(t *testing.T) {
	cfg := gridConfig()
	b := world.NewWall(0, 2, 0, 2)
	cfg.Bounds = &b
	c := NewController(cfg, 1, 1, 0)

	press(c, Input{Forward: true})
	for i := 0; i < 100; i++ {
		c.Step(Input{}, testDT)
	}
	s := c.State()
	if math.Abs(s.Pos.X-1) > 1e-3 || math.Abs(s.Pos.Y-1) > 1e-3 {
		t.Fatalf("pos = %+v, out-of-bounds move must be rejected", s.Pos)
	}
}

func TestGridTurnUsesShortestArc(t *testing.T) {
	// Start facing just shy of pi; a right turn crosses the wrap boundary
	// and must glide through it, not spin the long way round.
	start := math.Pi * 3 / 4
	c := NewController(gridConfig(), 1, 1, start)

	c.Step(Input{Right: true}, testDT)
	want := common.WrapAngle(start + math.Pi/2)

	prevErr := math.Abs(common.WrapAngle(c.State().Yaw - want))
	for i := 0; i < 100; i++ {
		c.Step(Input{}, testDT)
		err := math.Abs(common.WrapAngle(c.State().Yaw - want))
		if err > prevErr+1e-9 {
			t.Fatalf("yaw error grew from %v to %v, not shortest arc", prevErr, err)
		}
		prevErr = err
	}
	if prevErr > 1e-3 {
		t.Fatalf("yaw never converged, residual %v", prevErr)
	}
}
