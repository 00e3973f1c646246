//go:build !nogui

package gui

import (
	"voxplorer/internal/config"
	"voxplorer/internal/voice/engine"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	Close() error
}

// Factory creates GUI instances
type Factory struct {
	config     *config.Config
	configPath string
	voiceOpts  []engine.Option
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, configPath string, opts ...engine.Option) *Factory {
	return &Factory{
		config:     cfg,
		configPath: configPath,
		voiceOpts:  opts,
	}
}

// Create returns a new GUI instance
func (f *Factory) Create() (Interface, error) {
	return NewApp(f.config, f.configPath, f.voiceOpts...), nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
