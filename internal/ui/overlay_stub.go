//go:build !ebiten

package ui

import "lava-lamp/internal/lava"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*lava.Lamp, int) *Overlay { return &Overlay{} }

// SetGlow is a no-op in headless builds.
func (o *Overlay) SetGlow(*lava.Glow) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
