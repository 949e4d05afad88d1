package chapters

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadSpecAllChapters(t *testing.T) {
	names := []string{"start", "intro", "ch1", "ch2", "ch3", "ch4", "ch5", "end"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadSpec(name)
			if err != nil {
				t.Fatalf("LoadSpec(%q): %v", name, err)
			}
			if spec.Name != name {
				t.Fatalf("name = %q, want %q", spec.Name, name)
			}
		})
	}
}

func TestLoadSpecFields(t *testing.T) {
	spec, err := LoadSpec("ch1")
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Mode != "grid" {
		t.Fatalf("ch1 mode = %q, want grid", spec.Mode)
	}
	if len(spec.Layout) == 0 {
		t.Fatalf("ch1 should carry a maze layout")
	}
	if len(spec.Zones) == 0 {
		t.Fatalf("ch1 should define trigger zones")
	}
	if spec.Script == "" {
		t.Fatalf("ch1 should name a script")
	}
	if _, err := LoadScript(spec.Script); err != nil {
		t.Fatalf("LoadScript(%q): %v", spec.Script, err)
	}
}

func TestLoadSpecMissing(t *testing.T) {
	if _, err := LoadSpec("no_such_chapter"); err == nil {
		t.Fatalf("expected error for missing chapter")
	}
}

func TestFacingUnmarshal(t *testing.T) {
	cases := []struct {
		in      string
		want    Facing
		wantErr bool
	}{
		{in: `""`, want: FacingNorth},
		{in: "north", want: FacingNorth},
		{in: "east", want: FacingEast},
		{in: "south", want: FacingSouth},
		{in: "west", want: FacingWest},
		{in: "up", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var f Facing
			err := yaml.Unmarshal([]byte(c.in), &f)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f != c.want {
				t.Fatalf("facing = %v, want %v", f, c.want)
			}
		})
	}
}

func TestFacingYaw(t *testing.T) {
	if FacingNorth.Yaw() != 0 {
		t.Fatalf("north yaw = %v", FacingNorth.Yaw())
	}
	if got := FacingEast.Yaw(); got <= 1.57 || got >= 1.58 {
		t.Fatalf("east yaw = %v, want ~pi/2", got)
	}
	if got := FacingWest.Yaw(); got <= 4.71 || got >= 4.72 {
		t.Fatalf("west yaw = %v, want ~3pi/2", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{name: "ok_minimal", src: "name: t"},
		{name: "bad_mode", src: "name: t\nmode: teleport", wantErr: true},
		{name: "bad_camera", src: "name: t\ncamera: drone", wantErr: true},
		{name: "bad_avatar", src: "name: t\navatar: sideways", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var spec Spec
			if err := yaml.Unmarshal([]byte(c.src), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := spec.validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestCleanPaths(t *testing.T) {
	if got := cleanSpecPath("chapters/ch1"); got != "ch1.yaml" {
		t.Fatalf("cleanSpecPath = %q", got)
	}
	if got := cleanSpecPath("ch1.yaml"); got != "ch1.yaml" {
		t.Fatalf("cleanSpecPath = %q", got)
	}
	if got := cleanScriptPath("ch1"); got != "scripts/ch1.tengo" {
		t.Fatalf("cleanScriptPath = %q", got)
	}
	if got := cleanScriptPath("chapters/scripts/ch1.tengo"); got != "scripts/ch1.tengo" {
		t.Fatalf("cleanScriptPath = %q", got)
	}
}
