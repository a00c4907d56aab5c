// Package install orchestrates plugin installation: it drives each plugin
// through download, retry and extraction, reporting transitions over a
// per-plugin state channel, and runs whole batches concurrently.
package install

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/samhoang/strand/internal/archive"
	"github.com/samhoang/strand/internal/fetch"
	"github.com/samhoang/strand/internal/logger"
	"github.com/samhoang/strand/internal/plugin"
)

// Options configure a batch installation.
type Options struct {
	Fetch  fetch.Options
	Logger *logger.Logger
}

// Job pairs a plugin with the channel its installer reports on. The channel
// has a single producer (the installer) and is closed after the terminal
// state; its small capacity gives gentle backpressure when the renderer lags.
type Job struct {
	Plugin plugin.Plugin
	Name   string
	States <-chan State
}

// Renderer consumes every job's state channel until its terminal state.
type Renderer interface {
	Render(jobs []Job) error
}

// Result records one plugin's outcome.
type Result struct {
	Name string
	Err  error
}

// BatchError reports the plugins of a batch that failed to install.
type BatchError struct {
	Failed []Result
	Total  int
}

func (e *BatchError) Error() string {
	names := make([]string, len(e.Failed))
	for i, r := range e.Failed {
		names[i] = r.Name
	}
	return fmt.Sprintf("%d of %d plugins failed to install: %s",
		len(e.Failed), e.Total, strings.Join(names, ", "))
}

// Run installs a single plugin into dir, emitting every state transition on
// states and closing it afterwards. Exactly one terminal state is emitted.
// The archive's internal directory layout is unpacked under dir as-is.
func Run(ctx context.Context, p plugin.Plugin, dir string, opts Options, states chan<- State) error {
	name := p.DisplayName()
	log := opts.Logger.WithField("plugin", name)

	defer close(states)
	emit := func(st State) {
		st.Name = name
		states <- st
	}

	emit(State{Kind: StateDownloading})

	u, err := p.Resolve()
	if err != nil {
		emit(State{Kind: StateFailed, Err: err})
		return err
	}
	log.Debug("downloading " + u.String())

	body, err := fetch.Fetch(ctx, u.String(), opts.Fetch, func(ev fetch.Event) {
		log.Debug(fmt.Sprintf("download failed, retrying (attempt %d)", ev.Attempt))
		emit(State{Kind: StateRetrying, Attempt: ev.Attempt})
	})
	if err != nil {
		emit(State{Kind: StateFailed, Err: err})
		return err
	}

	emit(State{Kind: StateExtracting})

	if err := archive.ExtractTarGz(bytes.NewReader(body), dir); err != nil {
		emit(State{Kind: StateFailed, Err: err})
		return err
	}

	log.Debug("installed")
	emit(State{Kind: StateInstalled})
	return nil
}

// All installs every plugin concurrently: one installer goroutine plus one
// state channel per plugin, progress drained by render. A plugin's failure
// never cancels or blocks its siblings; failures are collected and returned
// as a single *BatchError once every plugin has reached a terminal state.
func All(ctx context.Context, plugins []plugin.Plugin, dir string, opts Options, render Renderer) error {
	jobs := make([]Job, len(plugins))
	results := make([]Result, len(plugins))

	var wg sync.WaitGroup
	for i, p := range plugins {
		states := make(chan State, 1)
		jobs[i] = Job{Plugin: p, Name: p.DisplayName(), States: states}

		wg.Add(1)
		go func(i int, p plugin.Plugin, states chan<- State) {
			defer wg.Done()
			err := Run(ctx, p, dir, opts, states)
			results[i] = Result{Name: p.DisplayName(), Err: err}
		}(i, p, states)
	}

	renderErr := render.Render(jobs)
	wg.Wait()
	if renderErr != nil {
		return renderErr
	}

	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	if len(failed) > 0 {
		return &BatchError{Failed: failed, Total: len(plugins)}
	}
	return nil
}
