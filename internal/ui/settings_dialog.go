package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/captray/internal/config"
	"github.com/ytget/captray/internal/localization"
)

// SettingsDialog edits the interface language and the recordings directory.
type SettingsDialog struct {
	settings *config.Settings
	loc      *localization.Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	recordingsDirEntry *widget.Entry
	languageSelect     *widget.Select

	// codes and names are parallel; the select shows names.
	codes []string
	names []string

	// OnSaved runs after a confirmed save. dirChanged reports whether the
	// recordings directory differs from the one shown when the dialog opened.
	OnSaved func(dirChanged bool)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *localization.Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.loc.GetText

	sd.recordingsDirEntry = widget.NewEntry()
	sd.recordingsDirEntry.SetPlaceHolder(sd.settings.RecordingsBasePath())

	browseDirBtn := widget.NewButton(t(localization.KeyBrowse), sd.onBrowseDirectory)
	recordingsDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.recordingsDirEntry)

	labels := sd.settings.GetLanguageOptions()
	for code := range labels {
		sd.codes = append(sd.codes, code)
	}
	sort.Strings(sd.codes)
	for _, code := range sd.codes {
		sd.names = append(sd.names, labels[code])
	}
	sd.languageSelect = widget.NewSelect(sd.names, nil)

	form := container.NewVBox(
		widget.NewLabel(t(localization.KeyRecordingsDirectory)),
		recordingsDirRow,

		widget.NewSeparator(),

		widget.NewLabel(t(localization.KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(localization.KeySettings),
		t(localization.KeySave),
		t(localization.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.recordingsDirEntry.SetText(sd.settings.GetRecordingsSavePath())
	sd.languageSelect.SetSelected(sd.nameFor(sd.settings.GetLanguage()))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.recordingsDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	before := sd.settings.RecordingsBasePath()
	sd.settings.SetRecordingsSavePath(sd.recordingsDirEntry.Text)
	dirChanged := sd.settings.RecordingsBasePath() != before

	// The language listener rebuilds the tray menu.
	if code := sd.codeFor(sd.languageSelect.Selected); code != "" {
		sd.settings.SetLanguage(code)
	}

	if sd.OnSaved != nil {
		sd.OnSaved(dirChanged)
	}

	dialog.ShowInformation(sd.loc.GetText(localization.KeySettings), sd.loc.GetText(localization.KeySettingsSaved), sd.window)
}

func (sd *SettingsDialog) nameFor(code string) string {
	for i, c := range sd.codes {
		if c == code {
			return sd.names[i]
		}
	}
	return ""
}

func (sd *SettingsDialog) codeFor(name string) string {
	for i, n := range sd.names {
		if n == name {
			return sd.codes[i]
		}
	}
	return ""
}
