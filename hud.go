package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the store's read-only surface: chapter title, notification
// text, dialogue lines, cart contents, and a pause menu. It never mutates
// story state except through the pause resume button.
type HUD struct {
	game *Game

	ui    *ebitenui.UI
	pause *ebitenui.UI

	title  *widget.Text
	body   *widget.Text
	notice *widget.Text
	cart   *widget.Text
	hint   *widget.Text
}

func NewHUD(g *Game) *HUD {
	h := &HUD{game: g}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dim := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

	newLine := func(clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})),
		)
	}
	h.title = newLine(white)
	h.body = newLine(white)
	h.notice = newLine(white)
	h.cart = newLine(dim)
	h.hint = newLine(dim)

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth-80, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(h.title)
	panel.AddChild(h.body)
	panel.AddChild(h.notice)
	panel.AddChild(h.cart)
	panel.AddChild(h.hint)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	h.ui = &ebitenui.UI{Container: root}

	h.pause = newPauseUI(g, &face)
	return h
}

// newPauseUI builds a centered pause menu with a resume button, using
// colored nine-slices so no theme fonts need loading.
func newPauseUI(g *Game, face *ebtext.Face) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func (h *HUD) Update() {
	g := h.game

	h.title.Label = ""
	h.body.Label = ""
	h.hint.Label = ""
	if g.scene != nil {
		spec := g.scene.Spec()
		h.title.Label = spec.Title
		h.body.Label = strings.Join(spec.Text, "\n")
		if spec.Advance {
			h.hint.Label = "[Space] Continue"
		}
	}
	h.notice.Label = g.store.Notice()
	if cart := g.store.Cart(); len(cart) > 0 {
		h.cart.Label = "Cart: " + strings.Join(cart, ", ")
	} else {
		h.cart.Label = ""
	}

	h.ui.Update()
	if g.paused {
		h.pause.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
	if h.game.paused {
		h.pause.Draw(screen)
	}
}
