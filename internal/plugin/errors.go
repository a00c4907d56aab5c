package plugin

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingUser = errors.New("no user segment before '/'")
)

// UnknownProviderError reports a provider token that names no known host.
type UnknownProviderError struct {
	Token string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("git provider %q not recognised: try \"github\", \"gitlab\" or \"bitbucket\"", e.Token)
}

// ParseError wraps errors with the offending plugin spec
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse plugin spec %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolveError reports a plugin whose spec produced an invalid download URL.
// This is a configuration problem, not a network one.
type ResolveError struct {
	Plugin string // display name
	Err    error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Plugin, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
