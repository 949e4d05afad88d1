package movement

import (
	"github.com/jakecoffman/cp"

	"github.com/quietloop/nightmarket/common"
)

// Pose is the camera placement produced by one simulation step, plus the
// optional visible-avatar placement. Heights are world Y; everything else
// lives on the horizontal plane.
type Pose struct {
	Position   cp.Vector
	Height     float64
	LookAt     cp.Vector
	LookHeight float64
	Yaw        float64

	Avatar *AvatarPose
}

// AvatarPose places the tracked character mesh.
type AvatarPose struct {
	Position cp.Vector
	Yaw      float64
}

func (c *Controller) reportedPosition() (float64, float64) {
	s := &c.state
	x, z := s.Pos.X, s.Pos.Y
	if c.cfg.Mode.Kind == KindContinuous && c.cfg.Mode.Continuous.Quantum > 0 {
		// The stepped-motion snap is a display signature; the internal
		// position stays continuous so slow movement still accumulates.
		q := c.cfg.Mode.Continuous.Quantum
		x = common.Quantize(x, q)
		z = common.Quantize(z, q)
		// Snapping can round up to half a quantum past an edge; the
		// report honors the bounds too.
		if b := c.cfg.Bounds; b != nil {
			hw := c.cfg.halfWidth()
			x = common.Clamp(x, b.L+hw, b.R-hw)
			z = common.Clamp(z, b.B+hw, b.T-hw)
		}
	}
	return x, z
}

func (c *Controller) pose(x, z float64) Pose {
	s := &c.state
	tracked := cp.Vector{X: x, Y: z}

	var pose Pose
	switch c.cfg.Mode.Camera {
	case ThirdPerson:
		back := c.cfg.CameraBack
		if back <= 0 {
			back = 3
		}
		up := c.cfg.CameraUp
		if up <= 0 {
			up = 2
		}
		pose = Pose{
			Position:   tracked.Sub(s.lastDir.Mult(back)),
			Height:     c.cfg.eyeHeight() + up,
			LookAt:     tracked,
			LookHeight: 0.5,
			Yaw:        s.Yaw,
		}
	default:
		pose = Pose{
			Position:   tracked,
			Height:     c.cfg.eyeHeight(),
			LookAt:     tracked.Add(s.lastDir),
			LookHeight: c.cfg.eyeHeight(),
			Yaw:        s.Yaw,
		}
	}

	dist := c.cfg.AvatarDistance
	if dist <= 0 {
		dist = 2
	}
	camForward := pose.LookAt.Sub(pose.Position)
	if camForward.LengthSq() > 0 {
		camForward = camForward.Normalize()
	} else {
		camForward = s.lastDir
	}

	switch c.cfg.Mode.Avatar {
	case AvatarAtTracked:
		pose.Avatar = &AvatarPose{Position: tracked, Yaw: s.Yaw}
	case AvatarForwardOfCamera:
		pose.Avatar = &AvatarPose{Position: pose.Position.Add(camForward.Mult(dist)), Yaw: s.Yaw}
	case AvatarBehindCamera:
		pose.Avatar = &AvatarPose{Position: pose.Position.Sub(camForward.Mult(dist)), Yaw: s.Yaw}
	}

	return pose
}
