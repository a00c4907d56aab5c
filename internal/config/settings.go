package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/samhoang/strand/internal/fetch"
)

// Duration parses TOML duration strings like "250ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Settings represents the strand.toml settings file.
type Settings struct {
	Install InstallSettings `toml:"install"`
}

// InstallSettings tune the download retry loop.
type InstallSettings struct {
	Attempts int      `toml:"attempts"`
	Backoff  Duration `toml:"backoff"`
}

// DefaultSettings returns the settings used when strand.toml is absent.
func DefaultSettings() *Settings {
	return &Settings{
		Install: InstallSettings{
			Attempts: fetch.DefaultAttempts,
			Backoff:  Duration(fetch.DefaultBackoff),
		},
	}
}

// LoadSettings reads strand.toml from path. A missing file yields the
// defaults; fields left unset in the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if settings.Install.Attempts <= 0 {
		settings.Install.Attempts = fetch.DefaultAttempts
	}
	if settings.Install.Backoff <= 0 {
		settings.Install.Backoff = Duration(fetch.DefaultBackoff)
	}

	return settings, nil
}

// FetchOptions converts the settings into fetcher options.
func (s *Settings) FetchOptions() fetch.Options {
	return fetch.Options{
		Attempts: s.Install.Attempts,
		Backoff:  time.Duration(s.Install.Backoff),
	}
}
