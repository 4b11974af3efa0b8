package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// DefaultSubdirTemplate is the subdirectory pattern appended to the recording
// output path: a date directory holding a name directory.
const DefaultSubdirTemplate = "%DATE%/%NAME%"

// Mode selects which entity names the recording directory when the active
// naming context is used.
type Mode string

const (
	// ModeScene names the directory after the current scene.
	ModeScene Mode = "scene"
	// ModeSource names the directory after the source of the current scene's first item.
	ModeSource Mode = "source"
)

// Settings are the user-editable naming settings.
type Settings struct {
	UseActiveContext bool   `mapstructure:"use_active_context"`
	Mode             Mode   `mapstructure:"mode"`
	FallbackName     string `mapstructure:"fallback_name"`
}

func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeScene, ModeSource:
		return nil
	default:
		return fmt.Errorf("unknown naming mode %q (want %q or %q)", s.Mode, ModeScene, ModeSource)
	}
}

type SourceConfig struct {
	Name string `mapstructure:"name"`
	Kind string `mapstructure:"kind"`
}

// FrontendConfig describes the scene graph of the local frontend used by the CLI.
type FrontendConfig struct {
	Scene   string         `mapstructure:"scene"`
	Items   []string       `mapstructure:"items"`
	Sources []SourceConfig `mapstructure:"sources"`
}

type OrganizeConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// RecpathConfig defines the configuration for recpath.
type RecpathConfig struct {
	// OutputPath is the recording output path before redirection.
	// Empty means there is no active recording output.
	OutputPath     string `mapstructure:"output_path"`
	SubdirTemplate string `mapstructure:"subdir_template"`

	Naming   Settings       `mapstructure:"naming"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Organize OrganizeConfig `mapstructure:"organize"`

	path string `mapstructure:"-"`
}

// Path returns the file the config was loaded from.
func (c *RecpathConfig) Path() string {
	return c.path
}

func (c *RecpathConfig) Validate() error {
	if c.SubdirTemplate == "" {
		return fmt.Errorf("missing subdir_template (%s)", c.path)
	}
	if err := c.Naming.Validate(); err != nil {
		return fmt.Errorf("invalid naming config (%s): %w", c.path, err)
	}
	for _, src := range c.Frontend.Sources {
		if src.Name == "" {
			return fmt.Errorf("frontend source without a name (%s)", c.path)
		}
	}
	return nil
}

// DefaultConfigPath returns the default path for the recpath config file.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine user config dir: %w", err)
	}
	return filepath.Join(dir, "recpath", "config.toml"), nil
}

// getConfigPath determines where to store the config file.
func getConfigPath(configPathFlag string) (string, error) {
	// Prefer user-specific config file path if specified.
	if configPathFlag != "" {
		return configPathFlag, nil
	}
	return DefaultConfigPath()
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("subdir_template", DefaultSubdirTemplate)
	v.SetDefault("naming.use_active_context", true)
	v.SetDefault("naming.mode", string(ModeScene))
	v.SetDefault("naming.fallback_name", "")
	v.SetDefault("organize.extensions", []string{".mkv", ".mp4", ".mov", ".flv", ".ts"})

	// Allow users to override config values with environment variables,
	// eg RECPATH_NAMING_FALLBACK_NAME.
	v.SetEnvPrefix("RECPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper, path string) (RecpathConfig, error) {
	config := RecpathConfig{path: path}
	if err := v.Unmarshal(&config); err != nil {
		return RecpathConfig{}, fmt.Errorf("error unmarshaling (%s): %w", path, err)
	}
	return config, nil
}

// LoadConfig reads the config file.
func LoadConfig(configPathFlag string) (RecpathConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return RecpathConfig{}, err
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return RecpathConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	return decode(v, path)
}

// SaveSettings writes s into the [naming] section of the config file,
// keeping the other keys as the file has them. Defaults and environment
// overrides are not written. The file and its directory are created if needed.
func SaveSettings(configPathFlag string, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading (%s): %w", path, err)
	}
	v.Set("naming.use_active_context", s.UseActiveContext)
	v.Set("naming.mode", string(s.Mode))
	v.Set("naming.fallback_name", s.FallbackName)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir %s: %w", dir, err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("error writing (%s): %w", path, err)
	}
	return nil
}

// Watch loads the config file and calls onChange with each valid version
// written afterwards. Invalid edits are logged and skipped.
func Watch(configPathFlag string, onChange func(RecpathConfig)) (RecpathConfig, error) {
	path, err := getConfigPath(configPathFlag)
	if err != nil {
		return RecpathConfig{}, err
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return RecpathConfig{}, fmt.Errorf("error reading (%s): %w", path, err)
	}
	initial, err := decode(v, path)
	if err != nil {
		return RecpathConfig{}, err
	}

	log := logger
	v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := decode(v, path)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			log.Warn("Ignoring config change",
				slog.String("path", e.Name),
				slog.String("error", err.Error()))
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()

	return initial, nil
}
