package movement

import (
	"github.com/jakecoffman/cp"

	"github.com/quietloop/nightmarket/world"
)

// Kind selects the movement variant.
type Kind int

const (
	// KindContinuous is free analog-style movement with acceleration,
	// friction, and per-axis wall sliding.
	KindContinuous Kind = iota
	// KindGrid is discrete cell-stepped movement with 90-degree tank
	// turns, smoothed for display.
	KindGrid
)

// CameraStyle selects how the camera pose follows the tracked point.
type CameraStyle int

const (
	FirstPerson CameraStyle = iota
	ThirdPerson
)

// AvatarStyle selects where a visible character mesh is placed, when one is
// requested at all. Chapters differ on purpose here; the placement is
// configuration, not a fixed convention.
type AvatarStyle int

const (
	AvatarNone AvatarStyle = iota
	// AvatarAtTracked puts the mesh directly on the tracked point.
	AvatarAtTracked
	// AvatarForwardOfCamera offsets the mesh along the camera's forward
	// vector (back-view chapters).
	AvatarForwardOfCamera
	// AvatarBehindCamera offsets the mesh against the camera's forward
	// vector.
	AvatarBehindCamera
)

// ContinuousParams configures the continuous variant.
type ContinuousParams struct {
	Accel    float64 // units/s^2 toward intent
	Friction float64 // 1/s exponential damping when intent is zero
	MaxSpeed float64 // uniform cap on the 2D velocity
	Quantum  float64 // reported-position snap increment, 0 disables
	// Forward is the reference forward basis on the plane for scenes where
	// "forward" is not world -Z. Zero value means {0, -1}.
	Forward cp.Vector
}

// GridParams configures the grid variant.
type GridParams struct {
	CellSize  float64 // world units per discrete move
	Cooldown  float64 // seconds between accepted discrete inputs
	Smoothing float64 // 1/s exponential glide toward the committed target
}

// Mode is the tagged movement variant plus the orthogonal camera and avatar
// styles. Exactly one of Continuous/Grid matches Kind.
type Mode struct {
	Kind       Kind
	Continuous ContinuousParams
	Grid       GridParams
	Camera     CameraStyle
	Avatar     AvatarStyle
}

// Config is everything a controller needs for one scene's lifetime.
type Config struct {
	Mode Mode

	EyeHeight float64 // camera height in first person
	HalfWidth float64 // player half-width for wall tests

	// Third-person camera offsets.
	CameraBack float64
	CameraUp   float64
	// Distance from the camera to an offset avatar.
	AvatarDistance float64

	Walls  world.Walls // nil means no obstacles
	Bounds *world.Wall // nil means unbounded

	// OnPosition is invoked once per simulation step with the reported
	// plane position. Throttling beyond that is the caller's concern.
	OnPosition func(x, z float64)
}

func (c *Config) eyeHeight() float64 {
	if c.EyeHeight > 0 {
		return c.EyeHeight
	}
	return 1.6
}

func (c *Config) halfWidth() float64 {
	if c.HalfWidth > 0 {
		return c.HalfWidth
	}
	return 0.3
}
