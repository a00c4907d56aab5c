package plugin

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseGitShorthand(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want GitRepo
	}{
		{"bare user/repo", "alice/tool", GitRepo{GitHub, "alice", "tool", "master"}},
		{"explicit ref", "alice/tool:v2", GitRepo{GitHub, "alice", "tool", "v2"}},
		{"github provider", "github@alice/tool", GitRepo{GitHub, "alice", "tool", "master"}},
		{"gitlab provider", "gitlab@bob/lib:main", GitRepo{GitLab, "bob", "lib", "main"}},
		{"bitbucket provider", "bitbucket@carol/thing:dev", GitRepo{Bitbucket, "carol", "thing", "dev"}},
		{"commit hash ref", "alice/tool:0f3c8d1", GitRepo{GitHub, "alice", "tool", "0f3c8d1"}},
		{"empty ref falls back", "alice/tool:", GitRepo{GitHub, "alice", "tool", "master"}},
		{"repo with dots", "alice/tool.vim", GitRepo{GitHub, "alice", "tool.vim", "master"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.spec, err)
			}
			if p.Git == nil {
				t.Fatalf("Parse(%q) did not produce a Git plugin: %+v", tt.spec, p)
			}
			if *p.Git != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, *p.Git, tt.want)
			}
		})
	}
}

func TestParseArchiveURL(t *testing.T) {
	tests := []string{
		"https://example.com/bundle.tar.gz",
		"http://mirror.internal/pkg/archive.tar.gz",
		"https://example.com/path?download=1",
	}

	for _, spec := range tests {
		t.Run(spec, func(t *testing.T) {
			p, err := Parse(spec)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", spec, err)
			}
			if p.Archive == nil {
				t.Fatalf("Parse(%q) did not produce an Archive plugin: %+v", spec, p)
			}
			if got := p.Archive.URL.String(); got != spec {
				t.Errorf("Parse(%q) kept URL %q", spec, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		_, err := Parse("nope@user/repo")
		var upErr *UnknownProviderError
		if !errors.As(err, &upErr) {
			t.Fatalf("Parse returned %v, want UnknownProviderError", err)
		}
		if upErr.Token != "nope" {
			t.Errorf("error names token %q, want %q", upErr.Token, "nope")
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := Parse("onlyuser")
		if !errors.Is(err, ErrMissingUser) {
			t.Fatalf("Parse returned %v, want ErrMissingUser", err)
		}
	})

	t.Run("error carries the spec", func(t *testing.T) {
		_, err := Parse("onlyuser")
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("Parse returned %v, want *ParseError", err)
		}
		if perr.Spec != "onlyuser" {
			t.Errorf("ParseError.Spec = %q, want %q", perr.Spec, "onlyuser")
		}
	})
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"alice/tool:v2", "tool"},
		{"gitlab@bob/lib", "lib"},
		{"https://example.com/bundle.tar.gz", "https://example.com/bundle.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			p, err := Parse(tt.spec)
			if err != nil {
				t.Fatal(err)
			}
			if got := p.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalYAML(t *testing.T) {
	var plugins []Plugin
	doc := "- alice/tool\n- gitlab@bob/lib:main\n- https://example.com/bundle.tar.gz\n"
	if err := yaml.Unmarshal([]byte(doc), &plugins); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(plugins) != 3 {
		t.Fatalf("got %d plugins, want 3", len(plugins))
	}
	if plugins[0].Git == nil || plugins[0].Git.Repo != "tool" {
		t.Errorf("first plugin = %+v, want git repo tool", plugins[0])
	}
	if plugins[1].Git == nil || plugins[1].Git.Provider != GitLab {
		t.Errorf("second plugin = %+v, want gitlab repo", plugins[1])
	}
	if plugins[2].Archive == nil {
		t.Errorf("third plugin = %+v, want archive", plugins[2])
	}
}

func TestUnmarshalYAMLRejectsBadSpec(t *testing.T) {
	var plugins []Plugin
	if err := yaml.Unmarshal([]byte("- nope@user/repo\n"), &plugins); err == nil {
		t.Fatal("unmarshal accepted an unknown provider")
	}
}
