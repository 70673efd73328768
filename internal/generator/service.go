package generator

import (
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/qrstudio/qr-studio/internal/encoder"
	"github.com/qrstudio/qr-studio/internal/export"
	"github.com/qrstudio/qr-studio/internal/model"
	"github.com/qrstudio/qr-studio/internal/platform"
	"github.com/qrstudio/qr-studio/internal/render"
)

// PlaceholderText is encoded into the preview whenever no user image exists.
const PlaceholderText = "Insert a text"

// DefaultSize is the edge length of generated images in pixels.
const DefaultSize = 300

// Accepted image edge lengths in pixels.
const (
	MinSize = 100
	MaxSize = 1000
)

var logger = logrus.WithField("component", "generator")

// Service implements Generator.
type Service struct {
	encoder   encoder.Encoder
	clipboard export.Clipboard
	size      int
	now       func() time.Time

	text      string
	palette   model.Palette
	current   *model.Snapshot
	preview   *model.Snapshot
	lastDir   string
	lastSaved string
	status    model.Status

	onUpdate func(State) // callback for UI updates
}

// Options configures a Service. Zero values pick defaults.
type Options struct {
	Size      int              // defaults to DefaultSize
	Directory string           // initial save directory, defaults to home
	Now       func() time.Time // clock for default file names, defaults to time.Now
}

// NewService creates a service showing the placeholder code.
func NewService(enc encoder.Encoder, clipboard export.Clipboard, opts Options) *Service {
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Service{
		encoder:   enc,
		clipboard: clipboard,
		size:      opts.Size,
		now:       opts.Now,
		palette:   model.DefaultPalette(),
		lastDir:   platform.ResolveDirectory(opts.Directory),
		status:    model.ReadyStatus(),
	}
	s.renderPlaceholder()
	return s
}

// SetUpdateCallback sets the callback fired after every operation.
func (s *Service) SetUpdateCallback(callback func(State)) {
	s.onUpdate = callback
}

// State returns a copy of the current state.
func (s *Service) State() State {
	return State{
		Text:    s.text,
		Preview: s.preview,
		Current: s.current,
		Palette: s.palette,
		Status:  s.status,
	}
}

// LastDirectory returns the directory the next save dialog starts in.
func (s *Service) LastDirectory() string {
	return s.lastDir
}

// LastSavedPath returns the most recently written file, or "" if nothing was saved.
func (s *Service) LastSavedPath() string {
	return s.lastSaved
}

// SetText records the input text and regenerates silently. Empty input is ignored; only
// failures change the status.
func (s *Service) SetText(text string) {
	s.text = text
	if strings.TrimSpace(text) == "" {
		return
	}
	s.generate(false)
	s.notify()
}

// Generate regenerates from the current text and reports the outcome in the status.
func (s *Service) Generate() {
	s.generate(true)
	s.notify()
}

// SetForeground changes the module color and regenerates if an image exists.
func (s *Service) SetForeground(c color.Color) {
	s.palette.Foreground = c
	s.recolor()
}

// SetBackground changes the background color and regenerates if an image exists.
func (s *Service) SetBackground(c color.Color) {
	s.palette.Background = c
	s.recolor()
}

func (s *Service) recolor() {
	if s.current != nil {
		s.generate(true)
	}
	s.notify()
}

// Configure swaps the encoder and image size, re-rendering the current image if any.
func (s *Service) Configure(enc encoder.Encoder, size int) {
	if enc != nil {
		s.encoder = enc
	}
	if size > 0 {
		s.size = size
	}

	if s.current != nil {
		s.generate(false)
	} else {
		s.renderPlaceholder()
	}
	s.notify()
}

// Copy puts the current image on the clipboard.
func (s *Service) Copy() {
	defer s.notify()

	if s.current == nil {
		s.status = model.Status{Severity: model.SeverityWarning, Key: model.StatusGenerateFirst}
		return
	}

	if err := s.clipboard.WriteImage(s.current.Image); err != nil {
		logger.WithError(err).WithField("snapshot", s.current.ShortID()).Warn("copy to clipboard failed")
		s.status = model.Status{Severity: model.SeverityError, Key: model.StatusCopyFailed, Detail: err.Error()}
		return
	}

	logger.WithField("snapshot", s.current.ShortID()).Debug("copied to clipboard")
	s.status = model.Status{Severity: model.SeverityOK, Key: model.StatusCopied}
}

// SuggestSave returns the directory and file name the save dialog should start with. It
// reports ok=false, with a warning status, when there is nothing to save.
func (s *Service) SuggestSave() (dir, name string, ok bool) {
	if s.current == nil {
		s.status = model.Status{Severity: model.SeverityWarning, Key: model.StatusGenerateFirst}
		s.notify()
		return "", "", false
	}
	return s.lastDir, export.DefaultFileName(s.now()), true
}

// SaveAs writes the current image to chosen, appending the .png extension if missing. An
// existing target is only replaced after confirm answers true; a nil confirm never
// overwrites. Declining leaves the file and the status untouched.
func (s *Service) SaveAs(chosen string, confirm ConfirmFunc) {
	if s.current == nil {
		s.status = model.Status{Severity: model.SeverityWarning, Key: model.StatusGenerateFirst}
		s.notify()
		return
	}
	if strings.TrimSpace(chosen) == "" {
		return
	}

	path := export.EnsureExtension(chosen)
	snapshot := s.current

	if !platform.FileExists(path) {
		s.write(path, snapshot)
		return
	}

	if confirm == nil {
		logger.WithField("path", path).Debug("target exists, not overwriting")
		return
	}

	confirm(path, func(overwrite bool) {
		if !overwrite {
			logger.WithField("path", path).Debug("overwrite declined")
			return
		}
		s.write(path, snapshot)
	})
}

// SaveFailed reports a save that failed before a path was chosen, e.g. a broken dialog.
func (s *Service) SaveFailed(err error) {
	logger.WithError(err).Warn("save failed")
	s.status = model.Status{Severity: model.SeverityError, Key: model.StatusSaveFailed, Detail: err.Error()}
	s.notify()
}

// Reset clears the input and the current image and shows the placeholder again.
func (s *Service) Reset() {
	s.text = ""
	s.current = nil
	s.status = model.ReadyStatus()
	s.renderPlaceholder()
	s.notify()
}

func (s *Service) write(path string, snapshot *model.Snapshot) {
	defer s.notify()

	entry := logger.WithFields(logrus.Fields{"path": path, "snapshot": snapshot.ShortID()})
	if err := export.WritePNG(path, snapshot.Image); err != nil {
		entry.WithError(err).Warn("save failed")
		s.status = model.Status{Severity: model.SeverityError, Key: model.StatusSaveFailed, Detail: err.Error()}
		return
	}

	entry.Info("saved image")
	s.lastDir = filepath.Dir(path)
	s.lastSaved = path
	s.status = model.Status{Severity: model.SeverityOK, Key: model.StatusSaved, Detail: filepath.Base(path)}
}

// generate encodes the trimmed input text. Explicit runs report every outcome; silent runs
// report failures only. The previous image survives any failure.
func (s *Service) generate(explicit bool) bool {
	text := strings.TrimSpace(s.text)
	if text == "" {
		if explicit {
			s.status = model.Status{Severity: model.SeverityWarning, Key: model.StatusEnterText}
		}
		return false
	}

	snapshot, err := s.render(text, false)
	if err != nil {
		encodeFailureEntry(err, len(text)).Warn("encode failed")
		s.status = encodeFailure(err)
		return false
	}

	s.current = snapshot
	s.preview = snapshot
	switch {
	case explicit:
		s.status = model.Status{Severity: model.SeverityOK, Key: model.StatusGenerated}
	case s.status.Key == model.StatusTooLarge || s.status.Key == model.StatusEncodeFailed:
		// the input was fixed; drop the stale failure
		s.status = model.ReadyStatus()
	}
	return true
}

func (s *Service) renderPlaceholder() {
	snapshot, err := s.render(PlaceholderText, true)
	if err != nil {
		encodeFailureEntry(err, len(PlaceholderText)).Error("placeholder encode failed")
		return
	}
	s.preview = snapshot
}

func (s *Service) render(text string, placeholder bool) (*model.Snapshot, error) {
	matrix, err := s.encoder.Encode(text, s.size)
	if err != nil {
		return nil, err
	}
	img := render.Render(matrix, s.palette.Foreground, s.palette.Background)
	snapshot := model.NewSnapshot(text, s.palette, img, placeholder, s.now())

	logger.WithFields(logrus.Fields{
		"snapshot":    snapshot.ShortID(),
		"backend":     s.encoder.Name(),
		"placeholder": placeholder,
	}).Debug("rendered")
	return snapshot, nil
}

func (s *Service) notify() {
	if s.onUpdate != nil {
		s.onUpdate(s.State())
	}
}

// maxLoggedError bounds library messages in the log; some quote the whole input.
const maxLoggedError = 80

// encodeFailureEntry describes why encoding failed without the input text.
func encodeFailureEntry(err error, length int) *logrus.Entry {
	entry := logger.WithField("length", length)

	var encErr *encoder.EncodeError
	if errors.As(err, &encErr) {
		entry = entry.WithFields(logrus.Fields{"backend": encErr.Backend, "kind": encErr.Kind.Error()})
	} else {
		msg := err.Error()
		if len(msg) > maxLoggedError {
			msg = msg[:maxLoggedError] + "..."
		}
		entry = entry.WithField("error", msg)
	}
	return entry
}

func encodeFailure(err error) model.Status {
	if errors.Is(err, encoder.ErrTooLarge) {
		return model.Status{Severity: model.SeverityError, Key: model.StatusTooLarge}
	}
	return model.Status{Severity: model.SeverityError, Key: model.StatusEncodeFailed}
}
