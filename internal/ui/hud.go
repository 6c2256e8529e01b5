//go:build ebiten

// Package ui draws the side panel of the GUI frontend.
package ui

import (
	"fmt"
	"image/color"

	"agelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status is the run information shown above the parameters.
type Status struct {
	Generation int
	Live       int
	Message    string
}

// HUD renders the status and parameter panel to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     Status
}

// NewHUD constructs a HUD for the provided parameters and panel width.
func NewHUD(snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, snapshot: snapshot}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the run information.
func (h *HUD) SetStatus(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	title := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	body := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	muted := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Life", face, panelPadding, y, title)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("Generation %d", h.status.Generation), face, panelPadding, y, body)
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("Live cells %d", h.status.Live), face, panelPadding, y, body)
	if h.status.Message != "" {
		y += lineHeight
		text.Draw(h.panel, h.status.Message, face, panelPadding, y, body)
	}
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		if y > height {
			break
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, title)
		for _, p := range group.Params {
			y += lineHeight
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding, y, muted)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	groupSpacing   = 24
	headerBaseline = 18
)
