// Package controller owns the displayed time and decides whether it follows
// the system clock (LIVE) or user edits (MANUAL).
package controller

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// Listener receives the state after every completed transition.
type Listener func(engine.Snapshot)

// Option configures a Controller.
type Option func(*Controller)

// WithPeriod overrides the live tick period.
func WithPeriod(d time.Duration) Option {
	return func(c *Controller) { c.period = d }
}

// WithPreferences overrides the startup display preferences.
func WithPreferences(p engine.DisplayPreferences) Option {
	return func(c *Controller) { c.prefs = p }
}

// Controller is the LIVE/MANUAL state machine.
//
// Every command runs to completion under mu, so the tick goroutine and UI
// callbacks never interleave. Exactly one ticker exists while the mode is
// LIVE; it is stopped on the transition to MANUAL and on Close, and a new
// one is created on the transition back to LIVE.
type Controller struct {
	clock  engine.Clock
	period time.Duration
	log    *slog.Logger

	mu        sync.Mutex
	mode      engine.Mode
	now       engine.TimeValue
	prefs     engine.DisplayPreferences
	epoch     uint64
	ticker    clockwork.Ticker
	stop      chan struct{}
	done      chan struct{}
	closed    bool
	listeners []Listener
}

// New creates a controller in LIVE mode, sampled from clk, and starts ticking.
func New(clk engine.Clock, opts ...Option) *Controller {
	c := &Controller{
		clock:  clk,
		period: config.TickPeriod,
		log:    slog.With(config.LogKeyComponent, config.CompController),
		mode:   engine.ModeLive,
		prefs:  engine.DefaultPreferences(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.now = engine.Sample(c.clock)
	c.startTickingLocked()
	c.mu.Unlock()

	return c
}

// -----------------------------------------------------------------------------
// Read Accessors
// -----------------------------------------------------------------------------

// Time returns the displayed time.
func (c *Controller) Time() engine.TimeValue {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Mode returns the current mode.
func (c *Controller) Mode() engine.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Preferences returns the display preferences.
func (c *Controller) Preferences() engine.DisplayPreferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// Snapshot returns time, mode and preferences read atomically.
func (c *Controller) Snapshot() engine.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers l to be called after every transition.
// Listeners run on the goroutine that issued the command (the tick goroutine
// for live updates), outside the lock. They must not issue commands.
func (c *Controller) Subscribe(l Listener) {
	c.mu.Lock()
	c.listeners = append(c.listeners, l)
	c.mu.Unlock()
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

// Tick refreshes the time from the system clock. It reports whether the
// time was replaced; in MANUAL mode it does nothing.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	if c.mode != engine.ModeLive {
		c.mu.Unlock()
		return false
	}
	c.now = engine.Sample(c.clock)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return true
}

// Edit sets one field of the displayed time, clamped to its range.
// Editing while LIVE switches to MANUAL in the same step, so no tick can
// overwrite the edit and no observer sees the edit under a LIVE label.
func (c *Controller) Edit(field engine.Field, value int) {
	c.mu.Lock()
	var stopped chan struct{}
	if c.mode == engine.ModeLive {
		c.mode = engine.ModeManual
		stopped = c.stopTickingLocked()
		c.log.Info(config.MsgModeChanged, config.LogKeyMode, c.mode.String())
	}
	c.now = c.now.With(field, value)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Debug(config.MsgTimeEdited,
		config.LogKeyField, field.String(),
		config.LogKeyValue, value,
		config.LogKeyClamped, engine.Clamp(field, value) != value,
		config.LogKeyTime, snap.Time,
	)

	wait(stopped)
	c.notify(snap)
}

// ToggleLive switches between LIVE and MANUAL.
// Returning to LIVE resamples the clock before the new ticker starts.
func (c *Controller) ToggleLive() {
	c.mu.Lock()
	var stopped chan struct{}
	if c.mode == engine.ModeLive {
		c.mode = engine.ModeManual
		stopped = c.stopTickingLocked()
	} else {
		c.mode = engine.ModeLive
		c.now = engine.Sample(c.clock)
		c.startTickingLocked()
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Info(config.MsgModeChanged, config.LogKeyMode, snap.Mode.String())

	wait(stopped)
	c.notify(snap)
}

// ToggleShowNumerals flips numeral visibility.
func (c *Controller) ToggleShowNumerals() {
	c.updatePrefs("show_numerals", func(p *engine.DisplayPreferences) { p.ShowNumerals = !p.ShowNumerals })
}

// ToggleUse24Hour flips between 12- and 24-hour readouts.
func (c *Controller) ToggleUse24Hour() {
	c.updatePrefs("use_24_hour", func(p *engine.DisplayPreferences) { p.Use24Hour = !p.Use24Hour })
}

// ToggleLanguage switches between English and Chinese.
func (c *Controller) ToggleLanguage() {
	c.updatePrefs("language", func(p *engine.DisplayPreferences) { p.Language = p.Language.Toggle() })
}

// Close stops the live ticker and waits for its goroutine to exit.
// It is safe to call more than once. After Close the controller still
// answers commands but never starts another ticker.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	stopped := c.stopTickingLocked()
	c.mu.Unlock()

	wait(stopped)
	c.log.Info(config.MsgControllerClose)
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

func (c *Controller) updatePrefs(name string, mutate func(*engine.DisplayPreferences)) {
	c.mu.Lock()
	mutate(&c.prefs)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Debug(config.MsgPrefChanged, config.LogKeyPref, name, config.LogKeyValue, snap.Prefs)
	c.notify(snap)
}

func (c *Controller) snapshotLocked() engine.Snapshot {
	return engine.Snapshot{Time: c.now, Mode: c.mode, Prefs: c.prefs}
}

func (c *Controller) notify(snap engine.Snapshot) {
	c.mu.Lock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

// startTickingLocked creates a fresh ticker for a new epoch. Ticks from any
// previous epoch are dropped by onTick.
func (c *Controller) startTickingLocked() {
	if c.closed || c.ticker != nil {
		return
	}
	c.epoch++
	c.ticker = c.clock.NewTicker(c.period)
	c.stop = make(chan struct{})
	c.done = make(chan struct{})

	go c.tickLoop(c.epoch, c.ticker, c.stop, c.done)

	c.log.Debug(config.MsgTickerStarted, config.LogKeyEpoch, c.epoch, config.LogKeyPeriod, c.period)
}

// stopTickingLocked stops the current ticker and returns a channel closed
// once its goroutine has exited. The caller waits on it after unlocking,
// since the goroutine may be blocked on mu delivering a tick.
func (c *Controller) stopTickingLocked() chan struct{} {
	if c.ticker == nil {
		return nil
	}
	c.ticker.Stop()
	close(c.stop)
	done := c.done
	c.ticker, c.stop, c.done = nil, nil, nil

	c.log.Debug(config.MsgTickerStopped, config.LogKeyEpoch, c.epoch)
	return done
}

func (c *Controller) tickLoop(epoch uint64, t clockwork.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case <-t.Chan():
			c.onTick(epoch)
		}
	}
}

func (c *Controller) onTick(epoch uint64) {
	c.mu.Lock()
	if epoch != c.epoch || c.mode != engine.ModeLive || c.ticker == nil {
		c.mu.Unlock()
		c.log.Debug(config.MsgTickDropped, config.LogKeyEpoch, epoch)
		return
	}
	c.now = engine.Sample(c.clock)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
}

func wait(ch chan struct{}) {
	if ch != nil {
		<-ch
	}
}
