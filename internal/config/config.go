package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"voxplorer/internal/errors"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Collision strategies for paste operations
const (
	CollisionRename    = "rename"
	CollisionSkip      = "skip"
	CollisionOverwrite = "overwrite"
	CollisionError     = "error"
)

// Voice engines
const (
	EngineWhisper = "whisper"
	EngineOpenAI  = "openai"
	EngineNone    = "none"
)

// Config represents the application configuration structure.
// It covers the explorer behaviour, search, preview and voice settings.
type Config struct {
	StartDir string `yaml:"start_dir"` // Directory shown at startup, ~ is expanded
	Explorer struct {
		ShowHidden bool     `yaml:"show_hidden"` // List dot-files
		Hide       []string `yaml:"hide"`        // Glob patterns of names never listed
		Collision  string   `yaml:"collision"`   // Paste collision strategy: rename, skip, overwrite, error
		Watch      bool     `yaml:"watch"`       // Refresh the listing when the directory changes on disk
	} `yaml:"explorer"`
	Search struct {
		Ignore   []string `yaml:"ignore"`    // Glob patterns pruned while walking
		MaxDepth int      `yaml:"max_depth"` // 0 = unlimited
	} `yaml:"search"`
	Preview struct {
		TextExtensions  []string `yaml:"text_extensions"`
		ImageExtensions []string `yaml:"image_extensions"`
		ImageWidth      int      `yaml:"image_width"`
		ImageHeight     int      `yaml:"image_height"`
		MaxTextBytes    int      `yaml:"max_text_bytes"` // 0 = whole file
	} `yaml:"preview"`
	Voice  VoiceConfig `yaml:"voice"`
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Debug bool `yaml:"debug"`
}

// VoiceConfig configures capture, transcription and spoken feedback
type VoiceConfig struct {
	Enabled             bool   `yaml:"enabled"`
	Engine              string `yaml:"engine"`                // whisper, openai or none
	Language            string `yaml:"language"`              // e.g. "en", "auto"
	WhisperModel        string `yaml:"whisper_model"`         // Path to a ggml model file
	CueSound            string `yaml:"cue_sound"`             // Optional mp3 played before listening
	MaxUtteranceSeconds int    `yaml:"max_utterance_seconds"` // Upper bound on one capture
	TTS                 string `yaml:"tts"`                   // espeak or log
	OpenAI              struct {
		APIKeyEnv       string `yaml:"api_key_env"`
		TranscribeModel string `yaml:"transcribe_model"`
		NLUModel        string `yaml:"nlu_model"`
		NLUFallback     bool   `yaml:"nlu_fallback"` // Ask the model when the grammar fails
		Proxy           string `yaml:"proxy"`        // Optional SOCKS5 address
	} `yaml:"openai"`
}

// DefaultPath returns ~/.config/voxplorer/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "voxplorer", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/voxplorer/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Decoding on top of the defaults keeps every unset field at its default
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnv reads an optional .env file and applies VOXPLORER_* overrides.
// A missing env file is not an error.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return errors.NewConfigError("error loading env file", envFile, errors.InvalidConfig, err)
		}
	}

	if v := os.Getenv("VOXPLORER_START_DIR"); v != "" {
		c.StartDir = v
	}
	if v := os.Getenv("VOXPLORER_VOICE_ENGINE"); v != "" {
		c.Voice.Engine = v
	}
	if v := os.Getenv("VOXPLORER_WHISPER_MODEL"); v != "" {
		c.Voice.WhisperModel = v
	}
	if v := os.Getenv("VOXPLORER_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewConfigError("invalid boolean", "VOXPLORER_DEBUG", errors.InvalidConfig, err)
		}
		c.Debug = debug
	}
	return c.Validate()
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.StartDir = "~"

	cfg.Explorer.ShowHidden = true
	cfg.Explorer.Hide = []string{}
	cfg.Explorer.Collision = CollisionOverwrite
	cfg.Explorer.Watch = true

	cfg.Search.Ignore = []string{}
	cfg.Search.MaxDepth = 0

	cfg.Preview.TextExtensions = []string{".txt"}
	cfg.Preview.ImageExtensions = []string{".png", ".jpg", ".jpeg"}
	cfg.Preview.ImageWidth = 400
	cfg.Preview.ImageHeight = 400

	cfg.Voice.Enabled = true
	cfg.Voice.Engine = EngineWhisper
	cfg.Voice.Language = "en"
	cfg.Voice.WhisperModel = "models/ggml-base.en.bin"
	cfg.Voice.MaxUtteranceSeconds = 10
	cfg.Voice.TTS = "espeak"
	cfg.Voice.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	cfg.Voice.OpenAI.TranscribeModel = "whisper-1"
	cfg.Voice.OpenAI.NLUModel = "gpt-4o-mini"

	cfg.Window.Width = 1000
	cfg.Window.Height = 600

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create config directory %s", dir)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	validCollisions := map[string]bool{
		CollisionRename: true, CollisionSkip: true, CollisionOverwrite: true, CollisionError: true,
	}
	if !validCollisions[c.Explorer.Collision] {
		return errors.NewConfigError("invalid collision setting", "explorer.collision", errors.InvalidConfig,
			fmt.Errorf("%q", c.Explorer.Collision))
	}

	for _, pattern := range c.Explorer.Hide {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid hide pattern", "explorer.hide", errors.InvalidConfig, err)
		}
	}
	for _, pattern := range c.Search.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid ignore pattern", "search.ignore", errors.InvalidConfig, err)
		}
	}
	if c.Search.MaxDepth < 0 {
		return errors.NewConfigError("max depth must be >= 0", "search.max_depth", errors.InvalidConfig, nil)
	}

	if c.Preview.MaxTextBytes < 0 {
		return errors.NewConfigError("text preview limit must be >= 0", "preview.max_text_bytes", errors.InvalidConfig, nil)
	}
	if c.Preview.ImageWidth <= 0 || c.Preview.ImageHeight <= 0 {
		return errors.NewConfigError("preview image box must be positive", "preview.image_width", errors.InvalidConfig, nil)
	}
	for _, ext := range append(append([]string{}, c.Preview.TextExtensions...), c.Preview.ImageExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			return errors.NewConfigError("extensions must start with a dot", "preview", errors.InvalidConfig,
				fmt.Errorf("%q", ext))
		}
	}

	switch c.Voice.Engine {
	case EngineWhisper, EngineOpenAI, EngineNone:
	default:
		return errors.NewConfigError("unknown voice engine", "voice.engine", errors.InvalidConfig,
			fmt.Errorf("%q", c.Voice.Engine))
	}
	switch c.Voice.TTS {
	case "espeak", "log":
	default:
		return errors.NewConfigError("unknown tts backend", "voice.tts", errors.InvalidConfig,
			fmt.Errorf("%q", c.Voice.TTS))
	}
	if c.Voice.MaxUtteranceSeconds < 1 {
		return errors.NewConfigError("max utterance must be >= 1 second", "voice.max_utterance_seconds", errors.InvalidConfig, nil)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.NewConfigError("window size must be positive", "window", errors.InvalidConfig, nil)
	}

	return nil
}

// ResolveStartDir expands ~ and falls back to the home directory when the
// configured start directory is missing or not a directory.
func (c *Config) ResolveStartDir() string {
	home, _ := os.UserHomeDir()

	dir := c.StartDir
	if dir == "" || dir == "~" {
		dir = home
	} else if strings.HasPrefix(dir, "~"+string(filepath.Separator)) || strings.HasPrefix(dir, "~/") {
		dir = filepath.Join(home, dir[2:])
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		if home != "" {
			return home
		}
		return "."
	}
	return dir
}

// NewTestConfig creates a configuration instance for testing purposes.
// Voice is disabled so tests never touch audio devices.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Explorer.Watch = false
	cfg.Voice.Enabled = false
	cfg.Voice.Engine = EngineNone
	cfg.Voice.TTS = "log"
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
