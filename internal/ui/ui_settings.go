package ui

import (
	"errors"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/analog-clock/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	apiKeyEntry *widget.Entry
	entryPort   *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog for the collaborators:
// the description API key and the snapshot feed port.
func (app *ClockApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	// --- 1. API Key ---
	sw.apiKeyEntry = widget.NewPasswordEntry()
	// Attempt to pre-fill from secure storage
	if app.Keys != nil {
		if key, err := app.Keys.Stored(); err == nil {
			sw.apiKeyEntry.SetText(key)
		} else {
			slog.Debug(config.ErrKeyringRead,
				config.LogKeyComponent, config.CompUISet,
				config.LogKeyError, err)
		}
	}

	// --- 2. Port ---
	// Numerical only, but requires strict Validation (Range 1-65535).
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.feedPort())
	sw.entryPort.Validator = app.portValidator

	itemKey := widget.NewFormItem(app.GetMsg(config.TKeyLblAPIKey), sw.apiKeyEntry)
	itemKey.HintText = app.GetMsg(config.TKeyHelpAPIKey)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	form := widget.NewForm(itemKey, itemPort)

	// --- Actions ---
	saveAction := func() {
		// Only the Port field has a strict requirement that blocks saving if invalid.
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(app.footerText())
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.SetFixedSize(true)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// portValidator accepts a TCP port between MinPort and MaxPort.
func (app *ClockApp) portValidator(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// saveSettings persists the API key and the feed port. A port change is
// picked up by the feed worker through the preference listener.
func (app *ClockApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	if app.Keys != nil {
		// An empty entry removes the stored key.
		if err := app.Keys.Save(sw.apiKeyEntry.Text); err != nil {
			slog.Error(config.ErrKeyringSave,
				config.LogKeyComponent, config.CompUISet,
				config.LogKeyError, err)
			dialog.ShowError(err, w)
			return
		}
	}

	if sw.entryPort.Text != "" {
		app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)
	}

	w.Close()
}
