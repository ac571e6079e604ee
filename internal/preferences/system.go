package preferences

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"
)

// ColorSchemeSource reports the platform's dark-mode preference.
type ColorSchemeSource interface {
	PrefersDark(ctx context.Context) (bool, error)
	// Watch calls onChange whenever the preference changes until ctx is done.
	Watch(ctx context.Context, onChange func(dark bool)) error
}

// InitializeTheme switches to dark mode when the platform prefers it, then
// follows later changes in both directions for as long as ctx lives. A light
// or failed initial probe leaves the restored value untouched.
func (s *Store) InitializeTheme(ctx context.Context, source ColorSchemeSource) error {
	dark, err := source.PrefersDark(ctx)
	if err != nil {
		log.Printf("Preferences: could not read system colour scheme: %v", err)
	} else if dark {
		s.SetDarkMode(true)
	}

	if err := source.Watch(ctx, s.SetDarkMode); err != nil {
		return fmt.Errorf("failed to watch system colour scheme: %w", err)
	}
	return nil
}

// Prober reads the current dark-mode preference.
type Prober interface {
	PrefersDark(ctx context.Context) (bool, error)
}

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GSettings probes the GNOME desktop colour scheme.
type GSettings struct {
	run commandRunner
}

func NewGSettings() *GSettings {
	return &GSettings{run: runCommand}
}

func (g *GSettings) PrefersDark(ctx context.Context) (bool, error) {
	out, err := g.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return false, fmt.Errorf("gsettings: %w", err)
	}
	scheme := strings.Trim(strings.TrimSpace(string(out)), "'")
	return scheme == "prefer-dark", nil
}

// PollingWatcher turns a Prober into a ColorSchemeSource by probing on a cron schedule.
type PollingWatcher struct {
	probe    Prober
	schedule string
	cron     *cron.Cron

	mu      sync.Mutex
	last    bool
	hasLast bool
}

// NewPollingWatcher accepts standard five-field specs and descriptors such as "@every 30s".
func NewPollingWatcher(probe Prober, schedule string) *PollingWatcher {
	return &PollingWatcher{
		probe:    probe,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor))),
	}
}

func (w *PollingWatcher) PrefersDark(ctx context.Context) (bool, error) {
	dark, err := w.probe.PrefersDark(ctx)
	if err != nil {
		return false, err
	}
	w.mu.Lock()
	w.last, w.hasLast = dark, true
	w.mu.Unlock()
	return dark, nil
}

func (w *PollingWatcher) Watch(ctx context.Context, onChange func(dark bool)) error {
	if _, err := w.cron.AddFunc(w.schedule, func() { w.poll(ctx, onChange) }); err != nil {
		return fmt.Errorf("invalid poll schedule '%s': %w", w.schedule, err)
	}
	w.cron.Start()
	log.Printf("Preferences: watching system colour scheme (%s)", w.schedule)

	go func() {
		<-ctx.Done()
		<-w.cron.Stop().Done()
	}()
	return nil
}

// poll probes once and reports a change. Probe errors are logged and skipped.
func (w *PollingWatcher) poll(ctx context.Context, onChange func(dark bool)) {
	dark, err := w.probe.PrefersDark(ctx)
	if err != nil {
		log.Printf("Preferences: colour scheme probe failed: %v", err)
		return
	}

	w.mu.Lock()
	changed := !w.hasLast || w.last != dark
	w.last, w.hasLast = dark, true
	w.mu.Unlock()

	if changed {
		onChange(dark)
	}
}
