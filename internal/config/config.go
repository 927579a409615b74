package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/ini.v1"
)

const (
	Section       = "AppTimer"
	KeyAppPath    = "app_path"
	KeyOutputPath = "output_path"

	DefaultOutputFile = "AppTimer.csv"
)

var (
	ErrMissingSection = errors.New("missing configuration section")
	ErrMissingKey     = errors.New("missing configuration key")
)

// Config is the application to time and where its runs are recorded.
type Config struct {
	AppPath    string
	OutputPath string
}

// Command splits AppPath on single spaces. The first token is the
// executable and the rest are forwarded as arguments. Quoted arguments
// containing spaces are not supported.
func (c Config) Command() (string, []string) {
	parts := strings.Split(c.AppPath, " ")
	if len(parts) > 1 {
		return parts[0], parts[1:]
	}
	return c.AppPath, nil
}

// Defaults returns the configuration written on first run for a config
// file stored at configPath.
func Defaults(configPath string) Config {
	return Config{
		AppPath:    defaultEditor() + " " + configPath,
		OutputPath: DefaultOutputPath(),
	}
}

// DefaultOutputPath points at a CSV file on the user's desktop, or a file
// in the working directory when there is no home directory.
func DefaultOutputPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultOutputFile
	}
	return filepath.Join(home, "Desktop", DefaultOutputFile)
}

func defaultEditor() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\system32\notepad.exe`
	}
	return "vi"
}

// LoadOrCreate reads the config file at path. When the file does not
// exist it is first created from defaults.
func LoadOrCreate(path string, defaults Config) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, defaults); err != nil {
			return Config{}, fmt.Errorf("failed to create default configuration file: %w", err)
		}
	}
	return Load(path)
}

// Load parses an existing config file. Values are kept verbatim: '#' and
// ';' inside a value and surrounding quotes are part of the value.
func Load(path string) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read configuration file: %w", err)
	}

	sec, err := f.GetSection(Section)
	if err != nil {
		return Config{}, fmt.Errorf("%w: [%s] in %s", ErrMissingSection, Section, path)
	}

	var cfg Config
	fields := []struct {
		key string
		dst *string
	}{
		{KeyAppPath, &cfg.AppPath},
		{KeyOutputPath, &cfg.OutputPath},
	}
	for _, field := range fields {
		if !sec.HasKey(field.key) {
			return Config{}, fmt.Errorf("%w: %s.%s in %s", ErrMissingKey, Section, field.key, path)
		}
		*field.dst = sec.Key(field.key).String()
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f := ini.Empty()
	sec, err := f.NewSection(Section)
	if err != nil {
		return err
	}
	if _, err := sec.NewKey(KeyAppPath, cfg.AppPath); err != nil {
		return err
	}
	if _, err := sec.NewKey(KeyOutputPath, cfg.OutputPath); err != nil {
		return err
	}
	return f.SaveTo(path)
}
