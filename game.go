package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/quietloop/nightmarket/audio"
	"github.com/quietloop/nightmarket/chapters"
	"github.com/quietloop/nightmarket/clock"
	"github.com/quietloop/nightmarket/scene"
	"github.com/quietloop/nightmarket/story"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// Game glues the core together: it measures real per-frame elapsed time,
// gates simulation through the fixed-step scheduler, mounts the scene for
// whichever chapter the store says is current, and draws the top-down
// debug presentation plus overlays. The 3D renderer proper lives outside
// this repository; everything it needs flows through the scene's pose.
type Game struct {
	store *story.Store
	mixer *audio.Mixer
	input *Input
	step  *clock.FixedStep
	hud   *HUD

	scene   *scene.Scene
	mounted story.Chapter

	watcher *chapters.Watcher

	lastFrame time.Time
	fadeAlpha float64
	paused    bool
	debug     bool
}

func NewGame(startChapter story.Chapter, debug, watch, mute bool) *Game {
	mixer := audio.NewMixer()
	if err := mixer.Initialize(); err != nil {
		fmt.Printf("game: audio unavailable: %v\n", err)
	}
	mixer.SetMuted(mute)

	store := story.NewStore(story.NewTimerScheduler())

	g := &Game{
		store:   store,
		mixer:   mixer,
		input:   NewInput(),
		step:    clock.NewFixedStep(clock.DefaultRate),
		mounted: startChapter,
		debug:   debug,
	}
	g.hud = NewHUD(g)

	if watch {
		w, err := chapters.NewWatcher("chapters", "chapters/scripts")
		if err != nil {
			fmt.Printf("game: watch disabled: %v\n", err)
		} else {
			g.watcher = w
		}
	}

	if startChapter != story.ChapterStart {
		store.JumpToChapter(startChapter)
	}
	g.mount(startChapter)
	return g
}

// mount swaps the active scene for a chapter. A failed load keeps the old
// scene so a bad spec edit doesn't kill a running game.
func (g *Game) mount(ch story.Chapter) {
	spec, err := chapters.LoadSpec(ch.String())
	if err != nil {
		fmt.Printf("game: load chapter %s: %v\n", ch, err)
		return
	}
	next, err := scene.New(spec, g.store, g.mixer)
	if err != nil {
		fmt.Printf("game: mount chapter %s: %v\n", ch, err)
		return
	}
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = next
	g.mounted = ch
}

func (g *Game) Update() error {
	now := time.Now()
	elapsed := 0.0
	if !g.lastFrame.IsZero() {
		elapsed = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	g.input.Update()
	if g.input.TogglePause {
		g.paused = !g.paused
	}

	// Remount when the chapter value swapped at the fade midpoint.
	if ch := g.store.Chapter(); ch != g.mounted {
		g.mount(ch)
	}
	g.drainWatcher()

	if !g.paused && !g.store.Transitioning() && g.scene != nil {
		if g.step.Tick(elapsed) {
			g.scene.Step(g.input.Move(), g.step.Interval())
		}
		if g.input.AdvancePressed {
			g.advance()
		}
	}

	// Ease the overlay toward the transition flag; the flag itself is the
	// contract, the ramp is presentation.
	target := 0.0
	if g.store.Transitioning() {
		target = 1
	}
	g.fadeAlpha += (target - g.fadeAlpha) * 0.2

	g.hud.Update()
	return nil
}

// advance moves a dialogue-style chapter to its configured successor.
func (g *Game) advance() {
	if g.scene == nil {
		return
	}
	spec := g.scene.Spec()
	if !spec.Advance || spec.Next == "" {
		return
	}
	next, err := story.ParseChapter(spec.Next)
	if err != nil {
		fmt.Printf("game: chapter %s: %v\n", spec.Name, err)
		return
	}
	g.mixer.Play("bell")
	g.store.GoToChapter(next)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			fmt.Printf("game: chapter file changed: %s\n", name)
			changed = true
		case err := <-g.watcher.Errors:
			fmt.Printf("game: watcher error: %v\n", err)
		default:
			if changed {
				g.mount(g.mounted)
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	if g.scene != nil {
		g.drawScene(screen)
	}
	g.drawEffect(screen)
	g.hud.Draw(screen)
	g.drawFade(screen)

	if g.debug {
		x, z := 0.0, 0.0
		if g.scene != nil {
			x, z = g.scene.Position()
		}
		left, right := g.store.MovementTally()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %.1f  chapter=%s pos=(%.2f, %.2f) tally=%.1f/%.1f events=%d",
			ebiten.ActualFPS(), g.mounted, x, z, left, right, g.store.VisitedCount()))
	}
}

// drawScene renders the horizontal world plane top-down: walls, trigger
// zones in debug mode, the player, and the camera aim.
func (g *Game) drawScene(screen *ebiten.Image) {
	layout := g.scene.Layout()

	// Fit the world into the screen with a margin.
	scale, offX, offZ := 24.0, 40.0, 40.0
	if layout != nil {
		b := layout.Bounds()
		sx := (baseWidth - 2*offX) / (b.R - b.L)
		sz := (baseHeight - 2*offZ) / (b.T - b.B)
		scale = sx
		if sz < scale {
			scale = sz
		}
	}
	toScreen := func(x, z float64) (float32, float32) {
		return float32(offX + x*scale), float32(offZ + z*scale)
	}

	if layout != nil {
		for _, w := range layout.Walls {
			x0, z0 := toScreen(w.L, w.B)
			x1, z1 := toScreen(w.R, w.T)
			vector.DrawFilledRect(screen, x0, z0, x1-x0, z1-z0, colornames.Darkslategray, false)
		}
	}

	pose := g.scene.Pose()
	px, pz := toScreen(pose.Position.X, pose.Position.Y)
	lx, lz := toScreen(pose.LookAt.X, pose.LookAt.Y)
	vector.StrokeLine(screen, px, pz, lx, lz, 2, colornames.Gold, false)
	vector.DrawFilledCircle(screen, px, pz, 6, colornames.Crimson, false)
	if pose.Avatar != nil {
		ax, az := toScreen(pose.Avatar.Position.X, pose.Avatar.Position.Y)
		vector.DrawFilledCircle(screen, ax, az, 4, colornames.Lightsteelblue, false)
	}
}

// drawEffect tints the screen for the active visual-effect tag. The tags
// are opaque to the core; this map is the debug stand-in for the real
// post-processing.
func (g *Game) drawEffect(screen *ebiten.Image) {
	var tint color.NRGBA
	switch g.store.ActiveEffect() {
	case "":
		return
	case "chill":
		tint = color.NRGBA{R: 0x40, G: 0x80, B: 0xff, A: 0x30}
	case "flicker":
		tint = color.NRGBA{R: 0xff, G: 0xff, B: 0xc0, A: 0x28}
	case "blackout":
		tint = color.NRGBA{A: 0xb0}
	default:
		tint = color.NRGBA{R: 0xff, A: 0x20}
	}
	vector.DrawFilledRect(screen, 0, 0, baseWidth, baseHeight, tint, false)
}

func (g *Game) drawFade(screen *ebiten.Image) {
	if g.fadeAlpha <= 0.01 {
		return
	}
	a := g.fadeAlpha
	if a > 1 {
		a = 1
	}
	vector.DrawFilledRect(screen, 0, 0, baseWidth, baseHeight,
		color.NRGBA{A: uint8(a * 0xff)}, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
