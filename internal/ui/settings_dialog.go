package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/qrstudio/qr-studio/internal/config"
	"github.com/qrstudio/qr-studio/internal/encoder"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	backendSelect  *widget.Select
	levelSelect    *widget.Select
	sizeEntry      *widget.Entry
	saveDirEntry   *widget.Entry
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the values are stored.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		window:        window,
		localization:  localization,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
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
	text := sd.localization.GetText

	sd.backendSelect = widget.NewSelect(sd.settings.GetEncoderBackendOptions(), nil)

	levelOptions := []string{}
	for _, level := range sd.settings.GetErrorCorrectionOptions() {
		levelOptions = append(levelOptions, string(level))
	}
	sd.levelSelect = widget.NewSelect(levelOptions, nil)

	sd.sizeEntry = widget.NewEntry()
	sd.sizeEntry.SetPlaceHolder(strconv.Itoa(config.MinImageSize) + "-" + strconv.Itoa(config.MaxImageSize))

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	// Language selection shows display names, stores codes
	languageNames := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyGenerationSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyEncoderBackend)+":"),
		sd.backendSelect,

		widget.NewLabel(text(KeyErrorCorrection)+":"),
		sd.levelSelect,

		widget.NewLabel(text(KeyImageSize)+":"),
		sd.sizeEntry,

		widget.NewLabel(text(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 450))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendSelect.SetSelected(sd.settings.GetEncoderBackend())
	sd.levelSelect.SetSelected(string(sd.settings.GetErrorCorrection()))
	sd.sizeEntry.SetText(strconv.Itoa(sd.settings.GetImageSize()))
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values; blank or invalid fields keep their stored value
func (sd *SettingsDialog) apply() {
	if sd.backendSelect.Selected != "" {
		sd.settings.SetEncoderBackend(sd.backendSelect.Selected)
	}

	if sd.levelSelect.Selected != "" {
		if level, err := encoder.ParseLevel(sd.levelSelect.Selected); err == nil {
			sd.settings.SetErrorCorrection(level)
		}
	}

	if size, err := strconv.Atoi(sd.sizeEntry.Text); err == nil {
		sd.settings.SetImageSize(size)
	}

	if sd.saveDirEntry.Text != "" {
		sd.settings.SetSaveDirectory(sd.saveDirEntry.Text)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
