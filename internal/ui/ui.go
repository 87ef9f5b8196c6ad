package ui

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"fyne.io/fyne/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/controller"
	"github.com/tartampluch/analog-clock/internal/describe"
	"github.com/tartampluch/analog-clock/internal/engine"
	"github.com/tartampluch/analog-clock/internal/server"
)

// KeyStore holds the API key edited in the settings window.
type KeyStore interface {
	Stored() (string, error)
	Save(key string) error
}

// ClockApp wires the controller to the Fyne window, the snapshot feed and
// the description service. It only issues commands to the controller and
// renders the snapshots it publishes.
type ClockApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizers  map[engine.Language]*i18n.Localizer
	Ctx         context.Context

	Controller *controller.Controller
	Server     *server.SnapshotServer
	Describer  *describe.Service
	Keys       KeyStore

	SupportedLanguages []string
	configChan         chan string

	// UI thread state
	lang           engine.Language
	widgets        *mainWidgets
	syncing        bool
	settingsWindow fyne.Window
}

// NewClockApp constructs the application and wires dependencies.
func NewClockApp(a fyne.App, ctx context.Context, ctrl *controller.Controller, srv *server.SnapshotServer, describer *describe.Service, keys KeyStore) *ClockApp {
	return &ClockApp{
		App:         a,
		Preferences: a.Preferences(),
		Ctx:         ctx,
		Controller:  ctrl,
		Server:      srv,
		Describer:   describer,
		Keys:        keys,
		configChan:  make(chan string, config.ChannelBufferSize),
		lang:        ctrl.Preferences().Language,
	}
}

// Run builds the main window, starts the feed and blocks in the UI loop.
func (app *ClockApp) Run() {
	app.SetupI18n()
	app.buildMainWindow()
	app.watchPreferences()

	app.Controller.Subscribe(app.onSnapshot)
	snap := app.Controller.Snapshot()
	app.updateFeed(snap)
	app.render(snap)

	go app.feedWorker()

	app.Window.ShowAndRun()
}

// onSnapshot runs on the notifying goroutine, outside the controller lock.
// Notifications from the tick goroutine and the UI thread may arrive out of
// order, so the latest state is re-read instead of trusting the argument.
func (app *ClockApp) onSnapshot(engine.Snapshot) {
	app.updateFeed(app.Controller.Snapshot())
	fyne.Do(func() {
		app.render(app.Controller.Snapshot())
	})
}

func (app *ClockApp) updateFeed(snap engine.Snapshot) {
	if app.Server == nil {
		return
	}
	if err := app.Server.Update(snap); err != nil {
		slog.Error(config.ErrExport,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
	}
}

// render pushes a snapshot into the widgets. Must run on the UI thread.
func (app *ClockApp) render(snap engine.Snapshot) {
	w := app.widgets
	if w == nil {
		return
	}

	// Programmatic updates below fire widget callbacks; they must not turn
	// into controller commands.
	app.syncing = true
	defer func() { app.syncing = false }()

	if snap.Prefs.Language != app.lang {
		app.lang = snap.Prefs.Language
		app.applyLanguage()
	}

	w.face.SetState(snap.Time, snap.Prefs.ShowNumerals)

	readout := snap.Readout()
	w.digital.Text = readout.Hours + config.DigitalSeparator + readout.Minutes
	w.digital.Refresh()

	live := snap.Mode == engine.ModeLive
	setVisible(w.seconds, live)
	w.seconds.Text = config.DigitalSeparator + readout.Seconds
	w.seconds.Refresh()

	setVisible(w.suffix, readout.Suffix != "")
	w.suffix.Text = readout.Suffix
	w.suffix.Refresh()

	w.hourSlider.SetValue(float64(snap.Time.Hours))
	w.hourValue.SetText(strconv.Itoa(snap.Time.Hours))
	w.minuteSlider.SetValue(float64(snap.Time.Minutes))
	w.minuteValue.SetText(strconv.Itoa(snap.Time.Minutes))

	w.numeralsCheck.SetChecked(snap.Prefs.ShowNumerals)
	w.use24Check.SetChecked(snap.Prefs.Use24Hour)

	app.renderMode(snap.Mode)
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

func (app *ClockApp) onSliderChanged(field engine.Field, value float64) {
	if app.syncing {
		return
	}
	app.Controller.Edit(field, int(math.Round(value)))
}

func (app *ClockApp) onShowNumeralsChanged(on bool) {
	if app.syncing || on == app.Controller.Preferences().ShowNumerals {
		return
	}
	app.Controller.ToggleShowNumerals()
}

func (app *ClockApp) onUse24HourChanged(on bool) {
	if app.syncing || on == app.Controller.Preferences().Use24Hour {
		return
	}
	app.Controller.ToggleUse24Hour()
}

func (app *ClockApp) onModeTapped() {
	app.Controller.ToggleLive()
}

func (app *ClockApp) onLanguageTapped() {
	app.Controller.ToggleLanguage()
}

// requestDescription asks the description service about the displayed time.
// The request runs in the background and never touches the controller; the
// returned channel is closed once the result is on screen.
func (app *ClockApp) requestDescription() <-chan struct{} {
	w := app.widgets
	snap := app.Controller.Snapshot()

	w.description.SetText(app.GetMsg(config.TKeyDescribePending))
	w.describeButton.Disable()

	done := make(chan struct{})
	go func() {
		defer close(done)
		text := app.Describer.Describe(app.Ctx, snap.Time.Hours, snap.Time.Minutes, snap.Prefs.Language)
		fyne.DoAndWait(func() {
			w.description.SetText(text)
			w.describeButton.Enable()
		})
	}()
	return done
}

// -----------------------------------------------------------------------------
// Snapshot Feed
// -----------------------------------------------------------------------------

// watchPreferences signals the feed worker when settings change.
func (app *ClockApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefServerPort:
		default:
		}
	})
}

func (app *ClockApp) feedPort() string {
	return app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort)
}

// feedWorker owns the snapshot server lifecycle and restarts it when the
// configured port changes. Port is only written while the server is stopped.
func (app *ClockApp) feedWorker() {
	log := slog.With(config.LogKeyComponent, config.CompUI)

	for {
		port := app.feedPort()
		app.Server.Port = port

		ctx, cancel := context.WithCancel(app.Ctx)
		errc := make(chan error, config.ChannelBufferSize)
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			errc <- app.Server.Start(ctx)
		}()

		restart := app.superviseFeed(log, port, errc)
		cancel()
		<-finished
		if !restart {
			return
		}
	}
}

// superviseFeed waits for shutdown or a port change and reports whether the
// server should be started again. A failed start is reported once and the
// worker then waits for the user to pick another port.
func (app *ClockApp) superviseFeed(log *slog.Logger, port string, errc <-chan error) bool {
	for {
		select {
		case <-app.Ctx.Done():
			return false

		case <-app.configChan:
			newPort := app.feedPort()
			if newPort == port {
				continue
			}
			log.Info(config.MsgServerRestart, config.LogKeyOld, port, config.LogKeyNew, newPort)
			return true

		case err := <-errc:
			if err == nil {
				continue
			}
			log.Error(config.ErrServerStartup, config.LogKeyPort, port, config.LogKeyError, err)
			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, port)))
			log.Warn(config.MsgFeedWait, config.LogKeyPort, port)
		}
	}
}
