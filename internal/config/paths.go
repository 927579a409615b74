package config

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "AppTimer"
	ConfigFileName = "settings.ini"
	LogFileName    = "AppTimer.log"
)

// Paths locates the per-user files the program reads and writes.
type Paths struct {
	Dir        string
	ConfigFile string
	LogFile    string
}

// ResolvePaths places the config and log files in the user's config
// directory (AppData\Roaming on Windows). If that directory cannot be
// determined the files are resolved relative to the working directory.
func ResolvePaths() Paths {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return PathsIn("")
	}
	return PathsIn(filepath.Join(base, AppDirName))
}

// PathsIn returns the file layout rooted at dir.
func PathsIn(dir string) Paths {
	return Paths{
		Dir:        dir,
		ConfigFile: filepath.Join(dir, ConfigFileName),
		LogFile:    filepath.Join(dir, LogFileName),
	}
}

// EnsureDir creates the directory holding the config and log files.
func (p Paths) EnsureDir() error {
	if p.Dir == "" {
		return nil
	}
	return os.MkdirAll(p.Dir, 0o755)
}
