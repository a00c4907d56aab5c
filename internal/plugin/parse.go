package plugin

import (
	"net/url"
	"strings"
)

// DefaultRef is the Git reference used when a spec names none.
//
// Some repos use something other than "master" as their default branch; the
// spec language has no way to ask the provider, so those need an explicit ref.
const DefaultRef = "master"

// Parse turns a plugin spec string into a Plugin.
//
// A spec that parses as an absolute http(s) URL becomes an Archive plugin.
// Anything else is read as Git shorthand of the form
//
//	[provider@]user/repo[:ref]
//
// where provider is one of "github" (the default), "gitlab" or "bitbucket"
// and ref defaults to DefaultRef. Git shorthand never carries a URL scheme,
// so the two forms cannot be confused.
func Parse(spec string) (Plugin, error) {
	if u, ok := parseArchiveURL(spec); ok {
		return Plugin{Archive: &Archive{URL: u}}, nil
	}

	repo, err := parseGitShorthand(spec)
	if err != nil {
		return Plugin{}, &ParseError{Spec: spec, Err: err}
	}
	return Plugin{Git: repo}, nil
}

func parseArchiveURL(spec string) (*url.URL, bool) {
	u, err := url.Parse(spec)
	if err != nil {
		return nil, false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, false
	}
	return u, true
}

func parseGitShorthand(spec string) (*GitRepo, error) {
	rest := spec

	// Default to GitHub when the provider is elided.
	provider := GitHub
	if token, after, found := strings.Cut(rest, "@"); found {
		p, err := ParseProvider(token)
		if err != nil {
			return nil, err
		}
		provider = p
		rest = after
	}

	user, after, found := strings.Cut(rest, "/")
	if !found {
		return nil, ErrMissingUser
	}
	rest = after

	// Everything before the ':' ref signifier is the repo name; without one
	// the whole remainder is the repo and the ref falls back to DefaultRef.
	repo, ref, found := strings.Cut(rest, ":")
	if !found || ref == "" {
		ref = DefaultRef
	}

	return &GitRepo{
		Provider: provider,
		User:     user,
		Repo:     repo,
		Ref:      ref,
	}, nil
}
