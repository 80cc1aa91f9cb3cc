package model

import "fmt"

// supportedColorDepths are the color depths the target firmware accepts.
var supportedColorDepths = map[int]bool{1: true, 8: true, 16: true, 24: true, 32: true}

// DisplayConfig describes the physical display the configuration targets.
type DisplayConfig struct {
	Width         int
	Height        int
	ColorDepth    int
	BufferPercent int
}

// DefaultDisplayConfig matches the original editor's new-project defaults.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Width:         320,
		Height:        240,
		ColorDepth:    16,
		BufferPercent: 100,
	}
}

// Validate checks the display invariants. It returns one error per
// violation so the compiler can batch them.
func (d DisplayConfig) Validate() []error {
	var errs []error
	if d.Width <= 0 {
		errs = append(errs, fmt.Errorf("display width must be positive, got %d", d.Width))
	}
	if d.Height <= 0 {
		errs = append(errs, fmt.Errorf("display height must be positive, got %d", d.Height))
	}
	if !supportedColorDepths[d.ColorDepth] {
		errs = append(errs, fmt.Errorf("unsupported color depth %d (want 1, 8, 16, 24 or 32)", d.ColorDepth))
	}
	if d.BufferPercent < 1 || d.BufferPercent > 100 {
		errs = append(errs, fmt.Errorf("buffer percent must be in [1,100], got %d", d.BufferPercent))
	}
	return errs
}
