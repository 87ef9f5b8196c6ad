package controller_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/analog-clock/internal/controller"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

var startTime = time.Date(2025, 6, 15, 10, 20, 30, 0, time.Local)

// recorder collects every snapshot delivered to a listener.
type recorder struct {
	mu    sync.Mutex
	snaps []engine.Snapshot
}

func (r *recorder) listen(s engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) all() []engine.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]engine.Snapshot, len(r.snaps))
	copy(out, r.snaps)
	return out
}

func setupController(t *testing.T) (*controller.Controller, *clockwork.FakeClock, *recorder) {
	t.Helper()
	fc := clockwork.NewFakeClockAt(startTime)
	c := controller.New(fc)
	t.Cleanup(c.Close)

	rec := &recorder{}
	c.Subscribe(rec.listen)
	return c, fc, rec
}

// requireTickers waits until the fake clock has exactly n live tickers.
func requireTickers(t *testing.T, fc *clockwork.FakeClock, n int) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, n), "expected %d active tickers", n)
}

// -----------------------------------------------------------------------------
// Initial State
// -----------------------------------------------------------------------------

func TestNew_StartsLiveWithSampledTime(t *testing.T) {
	c, _, _ := setupController(t)

	assert.Equal(t, engine.ModeLive, c.Mode())
	assert.Equal(t, engine.TimeValue{Hours: 10, Minutes: 20, Seconds: 30}, c.Time())
	assert.Equal(t, engine.DefaultPreferences(), c.Preferences())
}

func TestNew_WithPreferences(t *testing.T) {
	prefs := engine.DisplayPreferences{Language: engine.LanguageZH}
	c := controller.New(clockwork.NewFakeClockAt(startTime), controller.WithPreferences(prefs))
	defer c.Close()

	assert.Equal(t, prefs, c.Preferences())
}

// -----------------------------------------------------------------------------
// Live Ticking
// -----------------------------------------------------------------------------

func TestLive_TickerRefreshesTime(t *testing.T) {
	c, fc, rec := setupController(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 1), "live controller must own exactly one ticker")

	fc.Advance(time.Second)

	want := engine.TimeValue{Hours: 10, Minutes: 20, Seconds: 31}
	assert.Eventually(t, func() bool { return c.Time() == want }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return len(rec.all()) >= 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, engine.ModeLive, rec.all()[0].Mode)
}

func TestLive_TickPeriodOption(t *testing.T) {
	fc := clockwork.NewFakeClockAt(startTime)
	c := controller.New(fc, controller.WithPeriod(5*time.Second))
	defer c.Close()

	fc.Advance(time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 30, c.Time().Seconds, "no tick before the configured period")

	fc.Advance(4 * time.Second)
	assert.Eventually(t, func() bool { return c.Time().Seconds == 35 }, time.Second, 5*time.Millisecond)
}

func TestTick_ExplicitInLive(t *testing.T) {
	c, fc, rec := setupController(t)

	fc.Advance(90 * time.Second)
	// The ticker also fires here; either path lands on the same sample.
	assert.True(t, c.Tick())
	assert.Equal(t, engine.TimeValue{Hours: 10, Minutes: 22, Seconds: 0}, c.Time())
	assert.NotEmpty(t, rec.all())
}

// -----------------------------------------------------------------------------
// Edit
// -----------------------------------------------------------------------------

// TestEdit_SwitchesToManualAtomically verifies that the edit and the mode
// switch are observed as one step: no snapshot shows the edited value under
// LIVE, and the edit is never overwritten by a tick.
func TestEdit_SwitchesToManualAtomically(t *testing.T) {
	c, fc, rec := setupController(t)

	c.Edit(engine.FieldHours, 5)

	snap := c.Snapshot()
	assert.Equal(t, engine.ModeManual, snap.Mode)
	assert.Equal(t, engine.TimeValue{Hours: 5, Minutes: 20, Seconds: 30}, snap.Time)

	snaps := rec.all()
	require.Len(t, snaps, 1, "edit must notify exactly once")
	if diff := cmp.Diff(snap, snaps[0]); diff != "" {
		t.Errorf("listener saw a different state (-want +got):\n%s", diff)
	}

	fc.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 5, c.Time().Hours, "a tick must not overwrite the edit")

	for _, s := range rec.all() {
		assert.False(t, s.Mode == engine.ModeLive && s.Time.Hours == 5, "edited value observed under LIVE: %+v", s)
	}
}

func TestEdit_ClampsOutOfRange(t *testing.T) {
	c, _, _ := setupController(t)

	c.Edit(engine.FieldMinutes, 75)
	assert.Equal(t, 59, c.Time().Minutes, "75 must clamp to 59, not wrap to 15")

	c.Edit(engine.FieldHours, 99)
	assert.Equal(t, 23, c.Time().Hours)

	c.Edit(engine.FieldHours, -4)
	assert.Equal(t, 0, c.Time().Hours)
}

func TestEdit_InManualStaysManualAndKeepsSeconds(t *testing.T) {
	c, _, _ := setupController(t)

	c.ToggleLive()
	require.Equal(t, engine.ModeManual, c.Mode())

	c.Edit(engine.FieldMinutes, 3)
	assert.Equal(t, engine.ModeManual, c.Mode())
	assert.Equal(t, engine.TimeValue{Hours: 10, Minutes: 3, Seconds: 30}, c.Time())
}

// -----------------------------------------------------------------------------
// Manual Mode
// -----------------------------------------------------------------------------

func TestManual_TicksChangeNothing(t *testing.T) {
	c, fc, rec := setupController(t)

	requireTickers(t, fc, 1)
	c.ToggleLive()
	requireTickers(t, fc, 0)
	frozen := c.Time()
	before := len(rec.all())

	for i := 0; i < 5; i++ {
		fc.Advance(time.Second)
		assert.False(t, c.Tick(), "tick must be a no-op in MANUAL")
	}
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, frozen, c.Time())
	assert.Equal(t, before, len(rec.all()), "no notifications while frozen")
}

func TestToggleLive_ResamplesOnReturn(t *testing.T) {
	c, fc, _ := setupController(t)

	c.Edit(engine.FieldHours, 3)
	requireTickers(t, fc, 0)
	c.Edit(engine.FieldMinutes, 3)
	require.Equal(t, engine.ModeManual, c.Mode())
	require.Equal(t, engine.TimeValue{Hours: 3, Minutes: 3, Seconds: 30}, c.Time())

	fc.Advance(2 * time.Minute)
	c.ToggleLive()
	requireTickers(t, fc, 1)

	snap := c.Snapshot()
	assert.Equal(t, engine.ModeLive, snap.Mode)
	assert.Equal(t, engine.TimeValue{Hours: 10, Minutes: 22, Seconds: 30}, snap.Time, "must resample, not keep manual data")
}

func TestToggleLive_RestartsFreshTicker(t *testing.T) {
	c, fc, _ := setupController(t)

	c.ToggleLive()
	fc.Advance(500 * time.Millisecond)
	c.ToggleLive()

	// A resumed ticker would fire after the remaining 500ms; a fresh one waits a full period.
	fc.Advance(500 * time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 30, c.Time().Seconds)

	fc.Advance(500 * time.Millisecond)
	assert.Eventually(t, func() bool { return c.Time().Seconds == 31 }, time.Second, 5*time.Millisecond)
}

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

func TestPreferenceToggles_AreIndependent(t *testing.T) {
	c, _, rec := setupController(t)
	timeBefore, modeBefore := c.Time(), c.Mode()

	c.ToggleShowNumerals()
	c.ToggleUse24Hour()
	c.ToggleLanguage()

	assert.Equal(t, engine.DisplayPreferences{
		ShowNumerals: false,
		Use24Hour:    false,
		Language:     engine.LanguageZH,
	}, c.Preferences())
	assert.Equal(t, timeBefore, c.Time())
	assert.Equal(t, modeBefore, c.Mode())
	assert.Len(t, rec.all(), 3)

	c.ToggleLanguage()
	assert.Equal(t, engine.LanguageEN, c.Preferences().Language)
}

// -----------------------------------------------------------------------------
// Teardown
// -----------------------------------------------------------------------------

func TestClose_StopsTickingAndIsIdempotent(t *testing.T) {
	fc := clockwork.NewFakeClockAt(startTime)
	c := controller.New(fc)
	requireTickers(t, fc, 1)

	c.Close()
	c.Close()
	requireTickers(t, fc, 0)

	fc.Advance(3 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 30, c.Time().Seconds, "no tick may land after Close")

	// Commands still answer, but LIVE no longer starts a ticker.
	c.ToggleLive()
	c.ToggleLive()
	assert.Equal(t, engine.ModeLive, c.Mode())
	requireTickers(t, fc, 0)
	fc.Advance(3 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 33, c.Time().Seconds, "resample on toggle only")
}
