package ui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/qrstudio/qr-studio/internal/config"
	"github.com/qrstudio/qr-studio/internal/export"
	"github.com/qrstudio/qr-studio/internal/generator"
	"github.com/qrstudio/qr-studio/internal/model"
	"github.com/qrstudio/qr-studio/internal/platform"
)

var logger = logrus.WithField("component", "ui")

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	generator    generator.Generator
	chooser      PathChooser
	settings     *config.Settings
	localization *Localization

	titleText      *canvas.Text
	inputLabel     *widget.Label
	entry          *widget.Entry
	customizeLabel *widget.Label
	fgSwatch       *ColorSwatch
	bgSwatch       *ColorSwatch
	generateBtn    *widget.Button
	copyBtn        *widget.Button
	saveBtn        *widget.Button
	clearBtn       *widget.Button
	preview        *canvas.Image
	statusText     *canvas.Text

	status model.Status
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, gen generator.Generator, chooser PathChooser) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		generator:    gen,
		chooser:      chooser,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Set up callback for generator updates and draw the initial state
	ui.generator.SetUpdateCallback(ui.onStateUpdate)
	ui.onStateUpdate(ui.generator.State())

	logger.Debug("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	state := ui.generator.State()

	ui.titleText = canvas.NewText(ui.localization.GetText(KeyAppTitle), ColorAccent)
	ui.titleText.TextSize = TitleTextSize
	ui.titleText.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleText.Alignment = fyne.TextAlignCenter

	ui.inputLabel = widget.NewLabel(ui.localization.GetText(KeyInputLabel))
	ui.inputLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.entry = widget.NewEntry()
	ui.entry.SetPlaceHolder(ui.localization.GetText(KeyInputPlaceholder))
	// Regenerate on every keystroke, report on Enter
	ui.entry.OnChanged = ui.generator.SetText
	ui.entry.OnSubmitted = func(string) {
		ui.generator.Generate()
	}

	ui.customizeLabel = widget.NewLabel(ui.localization.GetText(KeyCustomize))
	ui.fgSwatch = NewColorSwatch(ui.localization.GetText(KeyForeground), state.Palette.Foreground, ui.onPickForeground)
	ui.bgSwatch = NewColorSwatch(ui.localization.GetText(KeyBackground), state.Palette.Background, ui.onPickBackground)
	customizeRow := container.NewHBox(ui.customizeLabel, ui.fgSwatch, ui.bgSwatch)

	ui.generateBtn = widget.NewButton(ui.localization.GetText(KeyGenerate), ui.generator.Generate)
	ui.generateBtn.Importance = widget.HighImportance
	ui.copyBtn = widget.NewButton(ui.localization.GetText(KeyCopy), ui.generator.Copy)
	ui.saveBtn = widget.NewButton(ui.localization.GetText(KeySave), ui.onSave)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClear)
	buttonRow := container.NewCenter(container.NewGridWithColumns(4,
		ui.generateBtn, ui.copyBtn, ui.saveBtn, ui.clearBtn,
	))

	ui.preview = canvas.NewImageFromImage(state.Preview.Image)
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.ScaleMode = canvas.ImageScalePixels
	ui.preview.SetMinSize(fyne.NewSize(PreviewSize, PreviewSize))

	ui.statusText = canvas.NewText("", ColorMuted)
	ui.statusText.TextSize = StatusTextSize
	ui.statusText.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(
		ui.titleText,
		ui.inputLabel,
		ui.entry,
		customizeRow,
		buttonRow,
		container.NewCenter(ui.preview),
		ui.statusText,
	)

	// The window cannot shrink below the minimum because the stack inherits this size
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(MinWindowWidth, MinWindowHeight))

	ui.window.SetContent(container.NewStack(minSize, container.NewVScroll(container.NewPadded(content))))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	revealItem := fyne.NewMenuItem(ui.localization.GetText(KeyRevealSaved), ui.onRevealSaved)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, revealItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onStateUpdate redraws the preview, swatches and status line
func (ui *RootUI) onStateUpdate(state generator.State) {
	if state.Preview != nil {
		ui.preview.Image = state.Preview.Image
		ui.preview.Refresh()
	}

	ui.fgSwatch.SetColor(state.Palette.Foreground)
	ui.bgSwatch.SetColor(state.Palette.Background)

	ui.status = state.Status
	ui.refreshStatus()
}

// refreshStatus renders the current status in its severity color
func (ui *RootUI) refreshStatus() {
	ui.statusText.Text = ui.localization.FormatStatus(ui.status)
	ui.statusText.Color = statusColor(ui.status.Severity)
	ui.statusText.Refresh()
}

// statusColor maps a severity to the theme color used for the status line
func statusColor(severity model.Severity) color.Color {
	switch severity {
	case model.SeverityOK:
		return ColorAccent
	case model.SeverityWarning:
		return ColorWarning
	case model.SeverityError:
		return ColorError
	default:
		return ColorMuted
	}
}

// onPickForeground opens the color picker for the module color
func (ui *RootUI) onPickForeground() {
	ui.showColorPicker(KeyForeground, ui.fgSwatch.Color(), ui.generator.SetForeground)
}

// onPickBackground opens the color picker for the background color
func (ui *RootUI) onPickBackground() {
	ui.showColorPicker(KeyBackground, ui.bgSwatch.Color(), ui.generator.SetBackground)
}

func (ui *RootUI) showColorPicker(titleKey string, current color.Color, apply func(color.Color)) {
	picker := dialog.NewColorPicker(
		ui.localization.GetText(titleKey),
		ui.localization.GetText(KeyChoose),
		apply,
		ui.window,
	)
	picker.Advanced = true
	picker.SetColor(current)
	picker.Show()
}

// onSave asks for a target path and hands it to the generator
func (ui *RootUI) onSave() {
	dir, name, ok := ui.generator.SuggestSave()
	if !ok {
		return
	}

	path, err := ui.chooser.ChooseSavePath(ui.localization.GetText(KeySaveTitle), dir, name)
	if err != nil {
		if !errors.Is(err, ErrChooserCancelled) {
			ui.generator.SaveFailed(err)
		}
		return
	}

	confirm := ui.confirmOverwrite
	if ui.chooser.ConfirmsOverwrite() && export.EnsureExtension(path) == path {
		// the dialog already asked about this exact file
		confirm = acceptOverwrite
	}
	ui.generator.SaveAs(path, confirm)
}

func acceptOverwrite(_ string, answer func(bool)) {
	answer(true)
}

// confirmOverwrite implements generator.ConfirmFunc with a yes/no dialog
func (ui *RootUI) confirmOverwrite(path string, answer func(bool)) {
	logger.WithField("path", path).Debug("asking to overwrite")
	dialog.ShowConfirm(
		ui.localization.GetText(KeyFileExistsTitle),
		ui.localization.GetText(KeyFileExistsMessage),
		answer,
		ui.window,
	)
}

// onClear empties the input and shows the placeholder
func (ui *RootUI) onClear() {
	ui.entry.SetText("")
	ui.generator.Reset()
}

// onRevealSaved handles revealing the last saved file in the system file manager
func (ui *RootUI) onRevealSaved() {
	path := ui.generator.LastSavedPath()
	if path == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyRevealSaved), ui.localization.GetText(KeyNothingSaved), ui.window)
		return
	}

	if err := platform.OpenFileInManager(path); err != nil {
		logger.WithError(err).WithField("path", path).Warn("reveal failed")
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+DetailSeparator+err.Error()), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies stored settings to the running session
func (ui *RootUI) onSettingsSaved() {
	ui.generator.Configure(ui.settings.NewEncoder(), ui.settings.GetImageSize())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleText.Text = ui.localization.GetText(KeyAppTitle)
	ui.titleText.Refresh()
	ui.inputLabel.SetText(ui.localization.GetText(KeyInputLabel))
	ui.entry.SetPlaceHolder(ui.localization.GetText(KeyInputPlaceholder))
	ui.customizeLabel.SetText(ui.localization.GetText(KeyCustomize))
	ui.fgSwatch.SetCaption(ui.localization.GetText(KeyForeground))
	ui.bgSwatch.SetCaption(ui.localization.GetText(KeyBackground))
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))

	ui.refreshStatus()
}
