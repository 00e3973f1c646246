//go:build nogui
// +build nogui

package gui

import (
	"fmt"

	"voxplorer/internal/config"
	"voxplorer/internal/voice/engine"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	Close() error
}

// Factory is a stub for builds with the GUI disabled
type Factory struct{}

// NewFactory creates a stub factory
func NewFactory(*config.Config, string, ...engine.Option) *Factory {
	return &Factory{}
}

// Create always fails in this build
func (f *Factory) Create() (Interface, error) {
	return nil, fmt.Errorf("GUI not available in this build, use the tui command")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
