package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/samhoang/strand/internal/install"
)

// Plain prints one full line per state transition with no animation. It is
// used when stdout is not a terminal and by tests.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPlain creates a plain renderer writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{out: w}
}

// Render drains every job's state channel, printing each transition. Lines
// from different plugins interleave, but each line is written atomically.
func (r *Plain) Render(jobs []install.Job) error {
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func(job install.Job) {
			defer wg.Done()
			for st := range job.States {
				r.mu.Lock()
				fmt.Fprintln(r.out, plainLine(st))
				r.mu.Unlock()
			}
		}(job)
	}
	wg.Wait()
	return nil
}

func plainLine(st install.State) string {
	switch st.Kind {
	case install.StateDownloading:
		return fmt.Sprintf("Installing %s...", st.Name)
	case install.StateRetrying:
		return fmt.Sprintf("Installing %s (retry %d)...", st.Name, st.Attempt)
	case install.StateExtracting:
		return fmt.Sprintf("Extracting %s...", st.Name)
	case install.StateInstalled:
		return fmt.Sprintf("✓ Installed %s", st.Name)
	case install.StateFailed:
		return fmt.Sprintf("✗ Failed %s: %v", st.Name, st.Err)
	default:
		return fmt.Sprintf("%s: %s", st.Name, st.Kind)
	}
}
