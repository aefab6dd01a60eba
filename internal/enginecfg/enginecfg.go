package enginecfg

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gamekit/internal/gpu"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnginePrefs holds engine-only preferences (window, adapter selection, input feel,
// frame-stats logging). Persisted across runs. In-game save data is separate and
// handled through storage.
type EnginePrefs struct {
	WindowWidth      uint32   `yaml:"window_width"`
	WindowHeight     uint32   `yaml:"window_height"`
	WindowTitle      string   `yaml:"window_title,omitempty"`
	Backends         []string `yaml:"backends,omitempty"`
	ForceAdapterType string   `yaml:"force_adapter_type,omitempty"`
	MouseSensitivity float32  `yaml:"mouse_sensitivity"`
	LogFrameStats    bool     `yaml:"log_frame_stats"`
}

// Default returns default engine preferences (720p window, any adapter, stats off).
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:      1280,
		WindowHeight:     720,
		MouseSensitivity: 0.01,
		LogFrameStats:    false,
	}
}

// Load reads engine preferences from config/engine.yaml. If the file is missing or invalid,
// returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	data, err := os.ReadFile(EngineConfigPath)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes engine preferences to config/engine.yaml, creating the config directory if needed.
func Save(p EnginePrefs) error {
	dir := filepath.Dir(EngineConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(EngineConfigPath, data, 0644)
}

// ApplyEnv overrides preferences from GAMEKIT_* environment variables, typically
// populated by env.Load(".env"). Unset or malformed variables leave the loaded
// value alone.
func (p *EnginePrefs) ApplyEnv() {
	if v, ok := envUint32("GAMEKIT_WINDOW_WIDTH"); ok {
		p.WindowWidth = v
	}
	if v, ok := envUint32("GAMEKIT_WINDOW_HEIGHT"); ok {
		p.WindowHeight = v
	}
	if v := os.Getenv("GAMEKIT_WINDOW_TITLE"); v != "" {
		p.WindowTitle = v
	}
	if v := os.Getenv("GAMEKIT_BACKENDS"); v != "" {
		p.Backends = strings.Split(v, ",")
	}
	if v := os.Getenv("GAMEKIT_FORCE_ADAPTER_TYPE"); v != "" {
		p.ForceAdapterType = v
	}
	if v := os.Getenv("GAMEKIT_MOUSE_SENSITIVITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f > 0 {
			p.MouseSensitivity = float32(f)
		}
	}
	if v := os.Getenv("GAMEKIT_LOG_FRAME_STATS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.LogFrameStats = b
		}
	}
}

// ParsedBackends translates the backend filter strings. Unknown names are
// reported so a typo in the config surfaces instead of silently widening the
// filter.
func (p EnginePrefs) ParsedBackends() ([]gpu.Backend, error) {
	if len(p.Backends) == 0 {
		return nil, nil
	}
	return gpu.ParseBackends(p.Backends)
}

// ParsedForceType translates the force_adapter_type string. Empty means no
// forcing; the bool reports whether a type was set and valid.
func (p EnginePrefs) ParsedForceType() (*gpu.DeviceType, error) {
	if p.ForceAdapterType == "" {
		return nil, nil
	}
	t, err := gpu.ParseDeviceType(p.ForceAdapterType)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func envUint32(name string) (uint32, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint32(n), true
}
