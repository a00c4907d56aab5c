package plugin

import (
	"fmt"
	"net/url"
)

// Resolve returns the archive download URL for the plugin. It is pure and
// deterministic: equal plugins resolve to identical URLs. Failure means the
// spec produced something that is not valid URL syntax.
func (p Plugin) Resolve() (*url.URL, error) {
	switch {
	case p.Archive != nil:
		return p.Archive.URL, nil
	case p.Git != nil:
		return p.Git.Resolve()
	default:
		return nil, &ResolveError{Plugin: p.DisplayName(), Err: fmt.Errorf("empty plugin")}
	}
}

// Resolve builds the provider-specific tarball URL for the repository.
func (r *GitRepo) Resolve() (*url.URL, error) {
	var raw string
	switch r.Provider {
	case GitHub:
		raw = fmt.Sprintf("https://codeload.github.com/%s/%s/tar.gz/%s", r.User, r.Repo, r.Ref)
	case GitLab:
		raw = fmt.Sprintf("https://gitlab.com/%s/%s/-/archive/%s/%s-%s.tar.gz", r.User, r.Repo, r.Ref, r.User, r.Ref)
	case Bitbucket:
		raw = fmt.Sprintf("https://bitbucket.org/%s/%s/get/%s.tar.gz", r.User, r.Repo, r.Ref)
	default:
		return nil, &ResolveError{Plugin: r.Repo, Err: fmt.Errorf("unknown provider %q", r.Provider)}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ResolveError{Plugin: r.Repo, Err: err}
	}
	return u, nil
}
