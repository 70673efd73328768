package config

import (
	"fyne.io/fyne/v2"

	"github.com/qrstudio/qr-studio/internal/encoder"
	"github.com/qrstudio/qr-studio/internal/generator"
	"github.com/qrstudio/qr-studio/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyEncoderBackend  = "encoder_backend"
	KeyErrorCorrection = "error_correction"
	KeyImageSize       = "image_size"
	KeyLanguage        = "app_language"
	KeySaveDirectory   = "save_directory"
)

// Default values
const (
	DefaultEncoderBackend  = encoder.DefaultBackend
	DefaultErrorCorrection = encoder.DefaultLevel
	DefaultImageSize       = generator.DefaultSize
	DefaultLanguage        = "system"
)

// Image size bounds
const (
	MinImageSize = generator.MinSize
	MaxImageSize = generator.MaxSize
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEncoderBackend returns the configured QR library backend
func (s *Settings) GetEncoderBackend() string {
	backend := s.app.Preferences().String(KeyEncoderBackend)
	if backend == "" {
		s.SetEncoderBackend(DefaultEncoderBackend)
		return DefaultEncoderBackend
	}
	return backend
}

// SetEncoderBackend sets the QR library backend, ignoring unknown names
func (s *Settings) SetEncoderBackend(backend string) {
	for _, name := range encoder.Backends() {
		if name == backend {
			s.app.Preferences().SetString(KeyEncoderBackend, backend)
			return
		}
	}
}

// GetErrorCorrection returns the configured error correction level
func (s *Settings) GetErrorCorrection() encoder.Level {
	level, err := encoder.ParseLevel(s.app.Preferences().String(KeyErrorCorrection))
	if err != nil {
		s.SetErrorCorrection(DefaultErrorCorrection)
		return DefaultErrorCorrection
	}
	return level
}

// SetErrorCorrection sets the error correction level
func (s *Settings) SetErrorCorrection(level encoder.Level) {
	if _, err := encoder.ParseLevel(string(level)); err != nil {
		level = DefaultErrorCorrection
	}
	s.app.Preferences().SetString(KeyErrorCorrection, string(level))
}

// GetImageSize returns the QR image edge length in pixels
func (s *Settings) GetImageSize() int {
	value := s.app.Preferences().Int(KeyImageSize)
	if value <= 0 {
		s.SetImageSize(DefaultImageSize)
		return DefaultImageSize
	}
	return value
}

// SetImageSize sets the QR image edge length in pixels
func (s *Settings) SetImageSize(size int) {
	if size < MinImageSize {
		size = MinImageSize
	}
	if size > MaxImageSize {
		size = MaxImageSize
	}
	s.app.Preferences().SetInt(KeyImageSize, size)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSaveDirectory returns the directory the save dialog starts in at launch
func (s *Settings) GetSaveDirectory() string {
	return platform.ResolveDirectory(s.app.Preferences().String(KeySaveDirectory))
}

// SetSaveDirectory sets the directory the save dialog starts in at launch
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDirectory, dir)
}

// GetEncoderBackendOptions returns available backend names
func (s *Settings) GetEncoderBackendOptions() []string {
	return encoder.Backends()
}

// GetErrorCorrectionOptions returns available error correction levels
func (s *Settings) GetErrorCorrectionOptions() []encoder.Level {
	return encoder.Levels()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// NewEncoder builds the configured encoder, falling back to the default backend
func (s *Settings) NewEncoder() encoder.Encoder {
	enc, err := encoder.New(s.GetEncoderBackend(), s.GetErrorCorrection())
	if err != nil {
		return encoder.NewZXing(s.GetErrorCorrection())
	}
	return enc
}
