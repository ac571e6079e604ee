package preferences

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu       sync.Mutex
	dark     bool
	err      error
	watchErr error
	onChange func(bool)
}

func (f *fakeSource) PrefersDark(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark, f.err
}

func (f *fakeSource) Watch(ctx context.Context, onChange func(bool)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = onChange
	return f.watchErr
}

func (f *fakeSource) emit(dark bool) {
	f.mu.Lock()
	cb := f.onChange
	f.mu.Unlock()
	cb(dark)
}

func TestInitializeTheme(t *testing.T) {
	s := New(nil)
	src := &fakeSource{dark: true}

	require.NoError(t, s.InitializeTheme(context.Background(), src))
	assert.True(t, s.IsDarkMode())

	src.emit(false)
	assert.False(t, s.IsDarkMode())
	src.emit(true)
	assert.True(t, s.IsDarkMode())
}

func TestInitializeTheme_ProbeFailureKeepsValue(t *testing.T) {
	s := New(nil)
	s.SetDarkMode(true)
	src := &fakeSource{err: errors.New("no display")}

	require.NoError(t, s.InitializeTheme(context.Background(), src))
	assert.True(t, s.IsDarkMode())
	assert.NotNil(t, src.onChange, "still subscribes after a failed probe")
}

func TestInitializeTheme_LightSystemKeepsSavedDarkMode(t *testing.T) {
	s := New(nil)
	s.SetDarkMode(true)
	src := &fakeSource{dark: false}

	require.NoError(t, s.InitializeTheme(context.Background(), src))
	assert.True(t, s.IsDarkMode())

	src.emit(false)
	assert.False(t, s.IsDarkMode(), "later changes apply both ways")
}

func TestInitializeTheme_WatchFailure(t *testing.T) {
	s := New(nil)
	err := s.InitializeTheme(context.Background(), &fakeSource{watchErr: errors.New("boom")})
	assert.Error(t, err)
}

func TestGSettings_PrefersDark(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		err     error
		want    bool
		wantErr bool
	}{
		{name: "dark", output: "'prefer-dark'\n", want: true},
		{name: "light", output: "'prefer-light'\n", want: false},
		{name: "default", output: "'default'\n", want: false},
		{name: "missing binary", err: errors.New("executable file not found"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &GSettings{run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
				assert.Equal(t, "gsettings", name)
				assert.Equal(t, []string{"get", "org.gnome.desktop.interface", "color-scheme"}, args)
				return []byte(tt.output), tt.err
			}}

			dark, err := g.PrefersDark(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dark)
		})
	}
}

func TestPollingWatcher_ReportsOnlyChanges(t *testing.T) {
	probe := &fakeSource{dark: false}
	w := NewPollingWatcher(probe, "@every 1h")

	dark, err := w.PrefersDark(context.Background())
	require.NoError(t, err)
	assert.False(t, dark)

	var seen []bool
	record := func(d bool) { seen = append(seen, d) }

	w.poll(context.Background(), record)
	assert.Empty(t, seen, "unchanged value is not reported")

	probe.dark = true
	w.poll(context.Background(), record)
	w.poll(context.Background(), record)
	assert.Equal(t, []bool{true}, seen)

	probe.err = errors.New("transient")
	w.poll(context.Background(), record)
	assert.Equal(t, []bool{true}, seen)
}

func TestPollingWatcher_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewPollingWatcher(&fakeSource{}, "@every 30s")
	require.NoError(t, w.Watch(ctx, func(bool) {}))
	require.Len(t, w.cron.Entries(), 1)

	bad := NewPollingWatcher(&fakeSource{}, "not a schedule")
	assert.Error(t, bad.Watch(ctx, func(bool) {}))
}
