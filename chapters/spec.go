package chapters

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Spec is one chapter's authored data: the maze (or open floor), the
// movement feel, the camera convention, trigger zones, ambient sound
// loops, and the script driving its one-shot events.
type Spec struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`

	// Layout rows: '#' wall, '.' floor, 'S' start, 'E' end. Empty means
	// an open floor bounded only by Bounds.
	Layout   []string `yaml:"layout"`
	CellSize float64  `yaml:"cell_size"`

	Mode        string  `yaml:"mode"`   // continuous | grid
	Camera      string  `yaml:"camera"` // first | third
	Avatar      string  `yaml:"avatar"` // "", tracked, forward, behind
	StartFacing Facing  `yaml:"start_facing"`
	Movement    Feel    `yaml:"movement"`
	Bounds      *Bounds `yaml:"bounds"`

	Zones  []Zone   `yaml:"zones"`
	Loops  []string `yaml:"loops"`
	Script string   `yaml:"script"`

	// Text is shown on dialogue-style chapters. Advance enables the
	// continue control, which transitions to Next.
	Text    []string `yaml:"text"`
	Advance bool     `yaml:"advance"`
	Next    string   `yaml:"next"`
}

// Feel tunes the movement controller; zero fields fall back to defaults.
type Feel struct {
	Accel     float64 `yaml:"accel"`
	Friction  float64 `yaml:"friction"`
	MaxSpeed  float64 `yaml:"max_speed"`
	Quantum   float64 `yaml:"quantum"`
	Cooldown  float64 `yaml:"cooldown"`
	Smoothing float64 `yaml:"smoothing"`
}

// Bounds is an explicit rectangular movement bound in world units, for
// chapters without a maze layout.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// Zone is a named trigger rectangle in cell coordinates. Cols/Rows default
// to a single cell.
type Zone struct {
	Name string `yaml:"name"`
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

// Facing is a compass start direction decoded from its YAML scalar form.
type Facing int

const (
	FacingNorth Facing = iota // -Z
	FacingEast                // +X
	FacingSouth               // +Z
	FacingWest                // -X
)

func (f *Facing) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("chapters: facing must be a string")
	}
	switch value.Value {
	case "", "north":
		*f = FacingNorth
	case "east":
		*f = FacingEast
	case "south":
		*f = FacingSouth
	case "west":
		*f = FacingWest
	default:
		return fmt.Errorf("chapters: unknown facing %q", value.Value)
	}
	return nil
}

// Yaw returns the facing as a yaw angle (0 faces -Z, +pi/2 faces +X).
func (f Facing) Yaw() float64 {
	const quarter = 1.5707963267948966
	return quarter * float64(f)
}

// LoadSpec reads and decodes the chapter spec with the given name.
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("chapters: load %s: %w", name, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("chapters: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *Spec) validate() error {
	switch s.Mode {
	case "", "continuous", "grid":
	default:
		return fmt.Errorf("chapters: %s: unknown mode %q", s.Name, s.Mode)
	}
	switch s.Camera {
	case "", "first", "third":
	default:
		return fmt.Errorf("chapters: %s: unknown camera %q", s.Name, s.Camera)
	}
	switch s.Avatar {
	case "", "tracked", "forward", "behind":
	default:
		return fmt.Errorf("chapters: %s: unknown avatar %q", s.Name, s.Avatar)
	}
	return nil
}
