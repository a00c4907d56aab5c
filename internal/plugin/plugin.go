// Package plugin defines the plugin spec language: the short textual
// descriptions users write ("user/repo", "gitlab@user/repo:v2", archive URLs)
// and their resolution into concrete download URLs. Everything here is pure;
// network and filesystem work lives in fetch, archive and install.
package plugin

import (
	"net/url"

	"gopkg.in/yaml.v3"
)

// Provider is a Git hosting service with its own tarball URL scheme.
type Provider string

const (
	GitHub    Provider = "github"
	GitLab    Provider = "gitlab"
	Bitbucket Provider = "bitbucket"
)

// ParseProvider maps a provider token from a plugin spec to a Provider.
// Tokens are matched exactly and case-sensitively.
func ParseProvider(token string) (Provider, error) {
	switch token {
	case "github":
		return GitHub, nil
	case "gitlab":
		return GitLab, nil
	case "bitbucket":
		return Bitbucket, nil
	default:
		return "", &UnknownProviderError{Token: token}
	}
}

// GitRepo identifies a snapshot of a hosted Git repository.
type GitRepo struct {
	Provider Provider
	User     string
	Repo     string
	Ref      string // branch, tag or commit hash; never empty after parsing
}

// Archive points directly at a downloadable archive.
type Archive struct {
	URL *url.URL
}

// Plugin is the unit of installation: either a Git repository snapshot or a
// direct archive URL. Exactly one of the two fields is set.
type Plugin struct {
	Git     *GitRepo
	Archive *Archive
}

// DisplayName returns the label shown next to the plugin's progress line:
// the bare repo name for Git plugins, the full URL for archives.
func (p Plugin) DisplayName() string {
	switch {
	case p.Git != nil:
		return p.Git.Repo
	case p.Archive != nil:
		return p.Archive.URL.String()
	default:
		return ""
	}
}

// UnmarshalYAML lets config files list plugins as plain spec strings.
func (p *Plugin) UnmarshalYAML(value *yaml.Node) error {
	var spec string
	if err := value.Decode(&spec); err != nil {
		return err
	}

	parsed, err := Parse(spec)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
