package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/samhoang/strand/internal/fetch"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "strand.toml"))
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}

	if settings.Install.Attempts != fetch.DefaultAttempts {
		t.Errorf("Attempts = %d, want default %d", settings.Install.Attempts, fetch.DefaultAttempts)
	}
	if time.Duration(settings.Install.Backoff) != fetch.DefaultBackoff {
		t.Errorf("Backoff = %v, want default %v", time.Duration(settings.Install.Backoff), fetch.DefaultBackoff)
	}
}

func TestLoadSettings(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strand.toml", `
[install]
attempts = 10
backoff = "250ms"
`)

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}

	if settings.Install.Attempts != 10 {
		t.Errorf("Attempts = %d, want 10", settings.Install.Attempts)
	}
	if time.Duration(settings.Install.Backoff) != 250*time.Millisecond {
		t.Errorf("Backoff = %v, want 250ms", time.Duration(settings.Install.Backoff))
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strand.toml", "[install]\nattempts = 7\n")

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}

	if settings.Install.Attempts != 7 {
		t.Errorf("Attempts = %d, want 7", settings.Install.Attempts)
	}
	if time.Duration(settings.Install.Backoff) != fetch.DefaultBackoff {
		t.Errorf("Backoff = %v, want default %v", time.Duration(settings.Install.Backoff), fetch.DefaultBackoff)
	}
}

func TestLoadSettingsRejectsBadDuration(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strand.toml", "[install]\nbackoff = \"fast\"\n")

	if _, err := LoadSettings(path); err == nil {
		t.Fatal("LoadSettings accepted an unparsable duration")
	}
}

func TestFetchOptions(t *testing.T) {
	settings := &Settings{Install: InstallSettings{Attempts: 4, Backoff: Duration(time.Second)}}

	opts := settings.FetchOptions()
	if opts.Attempts != 4 {
		t.Errorf("Attempts = %d, want 4", opts.Attempts)
	}
	if opts.Backoff != time.Second {
		t.Errorf("Backoff = %v, want 1s", opts.Backoff)
	}
}
