package install

// StateKind identifies a step of the installation state machine.
type StateKind string

const (
	StateDownloading StateKind = "downloading"
	StateRetrying    StateKind = "retrying"
	StateExtracting  StateKind = "extracting"
	StateInstalled   StateKind = "installed"
	StateFailed      StateKind = "failed"
)

// Terminal reports whether no further transition follows this state.
func (k StateKind) Terminal() bool {
	return k == StateInstalled || k == StateFailed
}

// State is one transition of a plugin's installation. Within a plugin the
// order is Downloading → Extracting → Installed, with Retrying events only
// during the download phase and Failed as the alternative terminal state.
type State struct {
	Kind    StateKind
	Name    string // plugin display name
	Attempt int    // failed download attempts so far, set for StateRetrying
	Err     error  // terminal cause, set for StateFailed
}
