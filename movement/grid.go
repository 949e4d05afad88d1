package movement

import (
	"math"

	"github.com/quietloop/nightmarket/common"
)

func (c *Controller) stepGrid(in Input, dt float64) {
	p := &c.cfg.Mode.Grid
	s := &c.state

	if s.cooldown > 0 {
		s.cooldown -= dt
	}

	// Discrete commits happen only on the rising edge of a key, and only
	// once the cooldown has elapsed. Held keys do not repeat.
	if s.cooldown <= 0 {
		committed := true
		switch {
		case in.Left && !s.prev.Left:
			s.targetYaw = common.WrapAngle(s.targetYaw - math.Pi/2)
		case in.Right && !s.prev.Right:
			s.targetYaw = common.WrapAngle(s.targetYaw + math.Pi/2)
		case in.Forward && !s.prev.Forward:
			c.tryGridMove(1)
		case in.Back && !s.prev.Back:
			c.tryGridMove(-1)
		default:
			committed = false
		}
		if committed {
			s.cooldown = p.Cooldown
		}
	}
	s.prev = in

	// The glide toward the committed target runs every step regardless of
	// whether a commit happened, so the camera slides between cells and
	// facings instead of teleporting.
	t := 1 - math.Exp(-p.Smoothing*dt)
	s.Pos.X = common.Lerp(s.Pos.X, s.target.X, t)
	s.Pos.Y = common.Lerp(s.Pos.Y, s.target.Y, t)
	s.Yaw = common.LerpAngle(s.Yaw, s.targetYaw, t)
	s.lastDir = facingVector(s.Yaw)
}

// tryGridMove attempts to move the target one cell along the committed
// facing (sign -1 steps backward). A colliding or out-of-bounds destination
// rejects the whole move; there is no partial slide in grid mode.
func (c *Controller) tryGridMove(sign float64) {
	p := &c.cfg.Mode.Grid
	s := &c.state

	dest := s.target.Add(facingVector(s.targetYaw).Mult(sign * p.CellSize))
	hw := c.cfg.halfWidth()
	if c.cfg.Walls.Blocked(dest.X, dest.Y, hw) {
		return
	}
	if b := c.cfg.Bounds; b != nil {
		if dest.X < b.L+hw || dest.X > b.R-hw || dest.Y < b.B+hw || dest.Y > b.T-hw {
			return
		}
	}
	s.target = dest
}
