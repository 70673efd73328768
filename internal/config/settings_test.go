package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/qrstudio/qr-studio/internal/encoder"
	"github.com/qrstudio/qr-studio/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEncoderBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if backend := settings.GetEncoderBackend(); backend != DefaultEncoderBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultEncoderBackend, backend)
	}

	// Test setting custom value
	settings.SetEncoderBackend(encoder.BackendBarcode)
	if backend := settings.GetEncoderBackend(); backend != encoder.BackendBarcode {
		t.Errorf("Expected backend %s, got %s", encoder.BackendBarcode, backend)
	}

	// Unknown backends are ignored
	settings.SetEncoderBackend("does-not-exist")
	if backend := settings.GetEncoderBackend(); backend != encoder.BackendBarcode {
		t.Errorf("Unknown backend should be ignored, got %s", backend)
	}

	if enc := settings.NewEncoder(); enc.Name() != encoder.BackendBarcode {
		t.Errorf("Expected encoder %s, got %s", encoder.BackendBarcode, enc.Name())
	}
}

func TestErrorCorrection(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if level := settings.GetErrorCorrection(); level != DefaultErrorCorrection {
		t.Errorf("Expected default level %s, got %s", DefaultErrorCorrection, level)
	}

	settings.SetErrorCorrection(encoder.LevelHigh)
	if level := settings.GetErrorCorrection(); level != encoder.LevelHigh {
		t.Errorf("Expected level %s, got %s", encoder.LevelHigh, level)
	}

	// Invalid levels reset to the default
	settings.SetErrorCorrection("Z")
	if level := settings.GetErrorCorrection(); level != DefaultErrorCorrection {
		t.Errorf("Invalid level should reset to %s, got %s", DefaultErrorCorrection, level)
	}
}

func TestImageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetImageSize(); size != DefaultImageSize {
		t.Errorf("Expected default image size %d, got %d", DefaultImageSize, size)
	}

	settings.SetImageSize(512)
	if size := settings.GetImageSize(); size != 512 {
		t.Errorf("Expected image size 512, got %d", size)
	}

	// Test boundary values
	settings.SetImageSize(1)
	if settings.GetImageSize() != MinImageSize {
		t.Errorf("Image size should be clamped to minimum %d", MinImageSize)
	}

	settings.SetImageSize(50000)
	if settings.GetImageSize() != MaxImageSize {
		t.Errorf("Image size should be clamped to maximum %d", MaxImageSize)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Defaults to home
	if dir := settings.GetSaveDirectory(); dir != platform.GetHomeDir() {
		t.Errorf("Expected home directory, got %s", dir)
	}

	customDir := t.TempDir()
	settings.SetSaveDirectory(customDir)
	if dir := settings.GetSaveDirectory(); dir != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, dir)
	}

	// Directories that vanished fall back to home
	settings.SetSaveDirectory(customDir + "/gone")
	if dir := settings.GetSaveDirectory(); dir != platform.GetHomeDir() {
		t.Errorf("Expected home directory for missing dir, got %s", dir)
	}
}

func TestGetErrorCorrectionOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetErrorCorrectionOptions()
	expectedOptions := []encoder.Level{encoder.LevelLow, encoder.LevelMedium, encoder.LevelQuartile, encoder.LevelHigh}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
