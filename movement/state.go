package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Input is the held directional state for one simulation step. The caller
// polls its live input source and fills this in; the controller never
// subscribes to key events itself.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

func axis(pos, neg bool) float64 {
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	default:
		return 0
	}
}

// State is the kinematic state owned by one controller instance. It is
// created at scene mount and discarded at unmount; nothing persists across
// scenes.
type State struct {
	Pos cp.Vector // plane position, X/Z
	Vel cp.Vector

	// Yaw is the smoothed facing angle. Zero faces -Z; positive turns
	// toward +X.
	Yaw float64

	// lastDir is the last nonzero movement direction; the camera keeps
	// aiming along it while the player stands still.
	lastDir cp.Vector

	// Grid-mode targets: the last committed cell position and facing the
	// smoothed values glide toward.
	target    cp.Vector
	targetYaw float64
	cooldown  float64
	prev      Input
}

// Controller steps one player through a scene.
type Controller struct {
	cfg   Config
	state State
}

// NewController creates a controller at the given start position with the
// given initial facing.
func NewController(cfg Config, startX, startZ, yaw float64) *Controller {
	c := &Controller{cfg: cfg}
	c.state.Pos = cp.Vector{X: startX, Y: startZ}
	c.state.target = c.state.Pos
	c.state.Yaw = yaw
	c.state.targetYaw = yaw
	c.state.lastDir = facingVector(yaw)
	return c
}

// State returns a copy of the current kinematic state.
func (c *Controller) State() State {
	return c.state
}

// TargetYaw returns the committed facing in grid mode.
func (c *Controller) TargetYaw() float64 {
	return c.state.targetYaw
}

// Step advances the simulation by dt, resolves collisions, reports the
// position, and returns the camera pose for this step.
func (c *Controller) Step(in Input, dt float64) Pose {
	switch c.cfg.Mode.Kind {
	case KindGrid:
		c.stepGrid(in, dt)
	default:
		c.stepContinuous(in, dt)
	}

	x, z := c.reportedPosition()
	if c.cfg.OnPosition != nil {
		c.cfg.OnPosition(x, z)
	}
	return c.pose(x, z)
}

// facingVector maps a yaw angle onto the plane: yaw 0 is -Z, +pi/2 is +X.
func facingVector(yaw float64) cp.Vector {
	return cp.Vector{X: math.Sin(yaw), Y: -math.Cos(yaw)}
}
