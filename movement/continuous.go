package movement

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/quietloop/nightmarket/common"
)

const restEpsilon = 1e-4

func (c *Controller) stepContinuous(in Input, dt float64) {
	p := &c.cfg.Mode.Continuous
	s := &c.state

	forward := p.Forward
	if forward.X == 0 && forward.Y == 0 {
		forward = cp.Vector{X: 0, Y: -1}
	}
	right := forward.Perp()

	wish := forward.Mult(axis(in.Forward, in.Back)).
		Add(right.Mult(axis(in.Right, in.Left)))

	if wish.LengthSq() > 0 {
		s.Vel = s.Vel.Add(wish.Normalize().Mult(p.Accel * dt))
	} else {
		// Exponential decay keeps deceleration frame-rate independent
		// under the fixed step.
		s.Vel = s.Vel.Mult(math.Exp(-p.Friction * dt))
		if s.Vel.LengthSq() < restEpsilon*restEpsilon {
			s.Vel = cp.Vector{}
		}
	}

	// Uniform cap on the 2D vector, not per-axis.
	s.Vel = s.Vel.Clamp(p.MaxSpeed)

	// Resolve each axis independently so the player slides along walls.
	// A rejected axis also loses its velocity component; otherwise the
	// player keeps "pushing" into the wall every step.
	hw := c.cfg.halfWidth()
	nx := s.Pos.X + s.Vel.X*dt
	if c.cfg.Walls.Blocked(nx, s.Pos.Y, hw) {
		s.Vel.X = 0
	} else {
		s.Pos.X = nx
	}
	nz := s.Pos.Y + s.Vel.Y*dt
	if c.cfg.Walls.Blocked(s.Pos.X, nz, hw) {
		s.Vel.Y = 0
	} else {
		s.Pos.Y = nz
	}

	if b := c.cfg.Bounds; b != nil {
		s.Pos.X = common.Clamp(s.Pos.X, b.L+hw, b.R-hw)
		s.Pos.Y = common.Clamp(s.Pos.Y, b.B+hw, b.T-hw)
	}

	// Keep aiming along the last real movement direction; standing still
	// must not snap the camera back to a default.
	if s.Vel.LengthSq() > restEpsilon*restEpsilon {
		s.lastDir = s.Vel.Normalize()
		s.Yaw = math.Atan2(s.lastDir.X, -s.lastDir.Y)
	}
}
