package scene

import (
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/quietloop/nightmarket/story"
)

// Script is a compiled chapter script. The script body runs once per
// simulation step and polls the scene through its host functions; the
// store's one-shot TriggerEvent keeps repeated polling from re-firing
// side effects. Scripts keep their own state across runs in the `state`
// map.
type Script struct {
	compiled *tengo.Compiled
}

// NewScript compiles src with the host bindings for this scene. The
// bindings read live scene and store state at call time, so nothing is
// captured stale at compile time.
func NewScript(src []byte, s *Scene) (*Script, error) {
	script := tengo.NewScript(src)
	state := &tengo.Map{Value: map[string]tengo.Object{}}
	_ = script.Add("state", state)

	for name, fn := range hostFunctions(s) {
		_ = script.Add(name, &tengo.UserFunction{Name: name, Value: fn})
	}

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &Script{compiled: compiled}, nil
}

// Run executes one polling pass of the script.
func (sc *Script) Run() error {
	return sc.compiled.Run()
}

func hostFunctions(s *Scene) map[string]tengo.CallableFunc {
	return map[string]tengo.CallableFunc{
		"in_zone": func(args ...tengo.Object) (tengo.Object, error) {
			if s.InZone(stringArg(args, 0)) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		},
		"trigger_event": func(args ...tengo.Object) (tengo.Object, error) {
			id := stringArg(args, 0)
			if id == "" {
				return tengo.FalseValue, nil
			}
			if s.store.TriggerEvent(id) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		},
		"go_to_chapter": func(args ...tengo.Object) (tengo.Object, error) {
			ch, err := story.ParseChapter(stringArg(args, 0))
			if err != nil {
				return tengo.FalseValue, nil
			}
			s.store.GoToChapter(ch)
			return tengo.TrueValue, nil
		},
		"set_effect": func(args ...tengo.Object) (tengo.Object, error) {
			tag := stringArg(args, 0)
			var d time.Duration
			if ms := intArg(args, 1); ms > 0 {
				d = time.Duration(ms) * time.Millisecond
			}
			s.store.SetActiveEffect(tag, d)
			return tengo.UndefinedValue, nil
		},
		"clear_effect": func(args ...tengo.Object) (tengo.Object, error) {
			s.store.ClearEffect()
			return tengo.UndefinedValue, nil
		},
		"add_to_cart": func(args ...tengo.Object) (tengo.Object, error) {
			if label := stringArg(args, 0); label != "" {
				s.store.AddToCart(label)
			}
			return tengo.UndefinedValue, nil
		},
		"cart_len": func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Int{Value: int64(len(s.store.Cart()))}, nil
		},
		"add_movement": func(args ...tengo.Object) (tengo.Object, error) {
			s.store.AddMovement(stringArg(args, 0), floatArg(args, 1))
			return tengo.UndefinedValue, nil
		},
		"dominant_side": func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.String{Value: s.store.DominantSide()}, nil
		},
		"notify": func(args ...tengo.Object) (tengo.Object, error) {
			s.store.Notify(stringArg(args, 0))
			return tengo.UndefinedValue, nil
		},
		"play": func(args ...tengo.Object) (tengo.Object, error) {
			s.sound.Play(stringArg(args, 0))
			return tengo.UndefinedValue, nil
		},
		"stop": func(args ...tengo.Object) (tengo.Object, error) {
			s.sound.Stop(stringArg(args, 0))
			return tengo.UndefinedValue, nil
		},
		"loop_sound": func(args ...tengo.Object) (tengo.Object, error) {
			s.sound.Loop(stringArg(args, 0), boolArg(args, 1))
			return tengo.UndefinedValue, nil
		},
		"player_pos": func(args ...tengo.Object) (tengo.Object, error) {
			x, z := s.Position()
			return &tengo.Array{Value: []tengo.Object{
				&tengo.Float{Value: x},
				&tengo.Float{Value: z},
			}}, nil
		},
		"chapter": func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.String{Value: s.store.Chapter().String()}, nil
		},
		"visited": func(args ...tengo.Object) (tengo.Object, error) {
			if s.store.HasVisited(stringArg(args, 0)) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		},
	}
}

func stringArg(args []tengo.Object, i int) string {
	if i >= len(args) || args[i] == nil {
		return ""
	}
	if s, ok := args[i].(*tengo.String); ok {
		return s.Value
	}
	return strings.Trim(args[i].String(), "\"")
}

func intArg(args []tengo.Object, i int) int64 {
	if i >= len(args) {
		return 0
	}
	switch v := args[i].(type) {
	case *tengo.Int:
		return v.Value
	case *tengo.Float:
		return int64(v.Value)
	}
	return 0
}

func floatArg(args []tengo.Object, i int) float64 {
	if i >= len(args) {
		return 0
	}
	switch v := args[i].(type) {
	case *tengo.Float:
		return v.Value
	case *tengo.Int:
		return float64(v.Value)
	}
	return 0
}

func boolArg(args []tengo.Object, i int) bool {
	if i >= len(args) || args[i] == nil {
		return false
	}
	return !args[i].IsFalsy()
}
