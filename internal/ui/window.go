package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
)

// mainWidgets holds references to the widgets refreshed on every snapshot
// or relabelled on a language change.
type mainWidgets struct {
	title    *canvas.Text
	subtitle *widget.Label

	face    *ClockFace
	digital *canvas.Text
	seconds *canvas.Text
	suffix  *canvas.Text

	panel          *widget.Card
	langLabel      *widget.Label
	langButton     *widget.Button
	modeButton     *widget.Button
	timeAdjustment *widget.Label
	hoursLabel     *widget.Label
	hourValue      *widget.Label
	hourSlider     *widget.Slider
	minutesLabel   *widget.Label
	minuteValue    *widget.Label
	minuteSlider   *widget.Slider
	displayLabel   *widget.Label
	numeralsCheck  *widget.Check
	use24Check     *widget.Check

	describeButton *widget.Button
	description    *widget.Label

	footerHour   *widget.Label
	footerMinute *widget.Label
}

// buildMainWindow creates the main window: dial and readout on the left,
// control panel on the right, formulas in the footer.
func (app *ClockApp) buildMainWindow() {
	w := &mainWidgets{}
	app.widgets = w

	// --- Header ---
	w.title = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	w.title.TextSize = config.TitleTextSize
	w.title.TextStyle = fyne.TextStyle{Bold: true}
	w.title.Alignment = fyne.TextAlignCenter
	w.subtitle = widget.NewLabel("")
	w.subtitle.Alignment = fyne.TextAlignCenter
	header := container.NewVBox(w.title, w.subtitle)

	// --- Dial & Digital Readout ---
	w.face = NewClockFace()

	w.digital = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	w.digital.TextSize = config.DigitalTextSize
	w.digital.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	w.seconds = canvas.NewText("", theme.Color(theme.ColorNameDisabled))
	w.seconds.TextSize = config.DigitalSubTextSize
	w.seconds.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	w.suffix = canvas.NewText("", theme.Color(theme.ColorNameDisabled))
	w.suffix.TextSize = config.DigitalSubTextSize
	w.suffix.TextStyle = fyne.TextStyle{Bold: true}

	readout := container.NewHBox(layout.NewSpacer(), w.digital, container.NewVBox(w.seconds, w.suffix), layout.NewSpacer())
	left := container.NewBorder(nil, readout, nil, nil, w.face)

	// --- Control Panel ---
	w.langLabel = widget.NewLabel("")
	w.langButton = widget.NewButton("", app.onLanguageTapped)
	w.modeButton = widget.NewButton("", app.onModeTapped)
	buttons := container.NewHBox(w.langLabel, w.langButton, layout.NewSpacer(), w.modeButton)

	w.timeAdjustment = widget.NewLabel("")
	w.timeAdjustment.TextStyle = fyne.TextStyle{Bold: true}

	w.hoursLabel = widget.NewLabel("")
	w.hourValue = widget.NewLabel("")
	w.hourValue.TextStyle = fyne.TextStyle{Bold: true}
	w.hourSlider = widget.NewSlider(0, config.MaxHours)
	w.hourSlider.Step = 1
	w.hourSlider.OnChanged = func(v float64) { app.onSliderChanged(engine.FieldHours, v) }

	w.minutesLabel = widget.NewLabel("")
	w.minuteValue = widget.NewLabel("")
	w.minuteValue.TextStyle = fyne.TextStyle{Bold: true}
	w.minuteSlider = widget.NewSlider(0, config.MaxMinutes)
	w.minuteSlider.Step = 1
	w.minuteSlider.OnChanged = func(v float64) { app.onSliderChanged(engine.FieldMinutes, v) }

	w.displayLabel = widget.NewLabel("")
	w.displayLabel.TextStyle = fyne.TextStyle{Bold: true}
	w.numeralsCheck = widget.NewCheck("", app.onShowNumeralsChanged)
	w.use24Check = widget.NewCheck("", app.onUse24HourChanged)

	w.describeButton = widget.NewButtonWithIcon("", theme.InfoIcon(), func() { app.requestDescription() })
	w.description = widget.NewLabel("")
	w.description.Wrapping = fyne.TextWrapWord

	w.panel = widget.NewCard("", "", container.NewVBox(
		buttons,
		w.timeAdjustment,
		container.NewBorder(nil, nil, w.hoursLabel, w.hourValue),
		w.hourSlider,
		container.NewBorder(nil, nil, w.minutesLabel, w.minuteValue),
		w.minuteSlider,
		widget.NewSeparator(),
		w.displayLabel,
		w.numeralsCheck,
		w.use24Check,
		widget.NewSeparator(),
		w.describeButton,
		w.description,
	))

	// --- Footer ---
	w.footerHour = widget.NewLabel("")
	w.footerHour.Alignment = fyne.TextAlignCenter
	w.footerMinute = widget.NewLabel("")
	w.footerMinute.Alignment = fyne.TextAlignCenter
	footer := container.NewVBox(w.footerHour, w.footerMinute)

	// Assembly
	body := container.NewGridWithColumns(config.LayoutColumnsDouble, left, container.NewVScroll(w.panel))
	content := container.NewBorder(header, footer, nil, nil, body)

	win := app.App.NewWindow(config.AppName)
	win.SetMaster()
	win.SetContent(container.NewPadded(content))
	win.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window = win

	app.applyLanguage()
}

// applyLanguage relabels every widget in the current language.
func (app *ClockApp) applyLanguage() {
	w := app.widgets
	if w == nil {
		return
	}

	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyTitle))
		app.Window.SetMainMenu(app.buildMainMenu())
	}

	w.title.Text = app.GetMsg(config.TKeyTitle)
	w.title.Refresh()
	w.subtitle.SetText(app.GetMsg(config.TKeySubtitle))

	w.panel.SetTitle(app.GetMsg(config.TKeyControlPanel))
	w.langLabel.SetText(app.GetMsg(config.TKeyLanguage))
	w.langButton.SetText(app.GetMsg(config.TKeyToggleLang))
	w.timeAdjustment.SetText(app.GetMsg(config.TKeyTimeAdjustment))
	w.hoursLabel.SetText(app.GetMsg(config.TKeyHours))
	w.minutesLabel.SetText(app.GetMsg(config.TKeyMinutes))
	w.displayLabel.SetText(app.GetMsg(config.TKeyDisplaySettings))
	w.numeralsCheck.Text = app.GetMsg(config.TKeyShowNumbers)
	w.numeralsCheck.Refresh()
	w.use24Check.Text = app.GetMsg(config.TKeyIs24Hour)
	w.use24Check.Refresh()
	w.describeButton.SetText(app.GetMsg(config.TKeyBtnDescribe))

	w.footerHour.SetText(app.GetMsg(config.TKeyFooterCalcHour))
	w.footerMinute.SetText(app.GetMsg(config.TKeyFooterCalcMinute))

	app.renderMode(app.Controller.Mode())
}

// renderMode shows the mode on the LIVE/MANUAL toggle.
func (app *ClockApp) renderMode(mode engine.Mode) {
	btn := app.widgets.modeButton
	if mode == engine.ModeLive {
		btn.Importance = widget.SuccessImportance
		btn.SetText(app.GetMsg(config.TKeyLive))
		return
	}
	btn.Importance = widget.WarningImportance
	btn.SetText(app.GetMsg(config.TKeyManual))
}

func (app *ClockApp) buildMainMenu() *fyne.MainMenu {
	settings := fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow)
	return fyne.NewMainMenu(fyne.NewMenu(app.GetMsg(config.TKeyMenuFile), settings))
}

// footerText is the version line shown in the settings window.
func (app *ClockApp) footerText() string {
	return fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}
