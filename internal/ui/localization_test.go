package ui

import (
	"testing"

	"github.com/qrstudio/qr-studio/internal/model"
)

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText(KeyGenerate); text != "Generate" {
		t.Errorf("Expected 'Generate', got %q", text)
	}

	l.SetLanguage("ru")
	if text := l.GetText(KeyGenerate); text != "Создать" {
		t.Errorf("Expected Russian text, got %q", text)
	}

	// Unknown keys fall back to the key itself
	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("pt")
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		if len(l.texts[lang]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, expected %d", lang, len(l.texts[lang]), len(l.texts["en"]))
		}
	}
}

func TestLocalization_FormatStatus(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		status   model.Status
		expected string
	}{
		{model.ReadyStatus(), "Ready"},
		{model.Status{Severity: model.SeverityOK, Key: model.StatusGenerated}, "✓ QR Code generated"},
		{model.Status{Severity: model.SeverityWarning, Key: model.StatusEnterText}, "⚠ Please enter text or URL"},
		{model.Status{Severity: model.SeverityOK, Key: model.StatusSaved, Detail: "code.png"}, "✓ Saved: code.png"},
		{model.Status{Severity: model.SeverityError, Key: model.StatusSaveFailed, Detail: "permission denied"}, "✗ Could not save image: permission denied"},
	}

	for _, test := range tests {
		if got := l.FormatStatus(test.status); got != test.expected {
			t.Errorf("FormatStatus(%+v) = %q, expected %q", test.status, got, test.expected)
		}
	}
}
