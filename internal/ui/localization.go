package ui

import "github.com/qrstudio/qr-studio/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Status keys from the model package are used as-is.
const (
	KeyAppTitle           = "app_title"
	KeyInputLabel         = "input_label"
	KeyInputPlaceholder   = "input_placeholder"
	KeyCustomize          = "customize"
	KeyForeground         = "foreground"
	KeyBackground         = "background"
	KeyChoose             = "choose"
	KeyGenerate           = "generate"
	KeyCopy               = "copy"
	KeySave               = "save"
	KeyClear              = "clear"
	KeySaveTitle          = "save_title"
	KeyFileExistsTitle    = "file_exists_title"
	KeyFileExistsMessage  = "file_exists_message"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyRevealSaved        = "reveal_saved"
	KeyNothingSaved       = "nothing_saved"
	KeyEncoderBackend     = "encoder_backend"
	KeyErrorCorrection    = "error_correction"
	KeyImageSize          = "image_size"
	KeySaveDirectory      = "save_directory"
	KeyBrowse             = "browse"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyGenerationSettings = "generation_settings"
	KeyInterfaceSettings  = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// FormatStatus renders a status as "<icon> <text>[: <detail>]"
func (l *Localization) FormatStatus(status model.Status) string {
	text := l.GetText(status.Key)
	if status.Detail != "" {
		text += DetailSeparator + status.Detail
	}

	switch status.Severity {
	case model.SeverityOK:
		return IconOK + " " + text
	case model.SeverityWarning:
		return IconWarning + " " + text
	case model.SeverityError:
		return IconError + " " + text
	default:
		return text
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "QR Code Generator",
		KeyInputLabel:         "Enter text or URL:",
		KeyInputPlaceholder:   "https://example.com",
		KeyCustomize:          "Customize:",
		KeyForeground:         "QR Color",
		KeyBackground:         "Background",
		KeyChoose:             "Choose",
		KeyGenerate:           "Generate",
		KeyCopy:               "Copy",
		KeySave:               "Save",
		KeyClear:              "Clear",
		KeySaveTitle:          "Save QR Code As...",
		KeyFileExistsTitle:    "File Exists",
		KeyFileExistsMessage:  "File already exists. Do you want to overwrite it?",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyRevealSaved:        "Show Last Saved File",
		KeyNothingSaved:       "Nothing has been saved yet",
		KeyEncoderBackend:     "QR Library",
		KeyErrorCorrection:    "Error Correction",
		KeyImageSize:          "Image Size (px)",
		KeySaveDirectory:      "Initial Save Directory",
		KeyBrowse:             "Browse",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyErrorOpeningFile:   "Error opening file",
		KeyGenerationSettings: "Generation",
		KeyInterfaceSettings:  "Interface",

		model.StatusReady:         "Ready",
		model.StatusGenerated:     "QR Code generated",
		model.StatusEnterText:     "Please enter text or URL",
		model.StatusEncodeFailed:  "Could not generate QR code",
		model.StatusTooLarge:      "Content too large for QR code",
		model.StatusCopied:        "Copied to clipboard",
		model.StatusCopyFailed:    "Could not copy to clipboard",
		model.StatusGenerateFirst: "Generate a QR code first",
		model.StatusSaved:         "Saved",
		model.StatusSaveFailed:    "Could not save image",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Генератор QR-кодов",
		KeyInputLabel:         "Введите текст или URL:",
		KeyInputPlaceholder:   "https://example.com",
		KeyCustomize:          "Настройка:",
		KeyForeground:         "Цвет QR",
		KeyBackground:         "Фон",
		KeyChoose:             "Выберите",
		KeyGenerate:           "Создать",
		KeyCopy:               "Копировать",
		KeySave:               "Сохранить",
		KeyClear:              "Очистить",
		KeySaveTitle:          "Сохранить QR-код как...",
		KeyFileExistsTitle:    "Файл существует",
		KeyFileExistsMessage:  "Файл уже существует. Перезаписать его?",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyRevealSaved:        "Показать последний файл",
		KeyNothingSaved:       "Ещё ничего не сохранено",
		KeyEncoderBackend:     "Библиотека QR",
		KeyErrorCorrection:    "Коррекция ошибок",
		KeyImageSize:          "Размер изображения (px)",
		KeySaveDirectory:      "Папка сохранения",
		KeyBrowse:             "Обзор",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyGenerationSettings: "Генерация",
		KeyInterfaceSettings:  "Интерфейс",

		model.StatusReady:         "Готово",
		model.StatusGenerated:     "QR-код создан",
		model.StatusEnterText:     "Пожалуйста, введите текст или URL",
		model.StatusEncodeFailed:  "Не удалось создать QR-код",
		model.StatusTooLarge:      "Слишком много данных для QR-кода",
		model.StatusCopied:        "Скопировано в буфер обмена",
		model.StatusCopyFailed:    "Не удалось скопировать в буфер обмена",
		model.StatusGenerateFirst: "Сначала создайте QR-код",
		model.StatusSaved:         "Сохранено",
		model.StatusSaveFailed:    "Не удалось сохранить изображение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Gerador de QR Code",
		KeyInputLabel:         "Digite texto ou URL:",
		KeyInputPlaceholder:   "https://example.com",
		KeyCustomize:          "Personalizar:",
		KeyForeground:         "Cor do QR",
		KeyBackground:         "Fundo",
		KeyChoose:             "Escolher",
		KeyGenerate:           "Gerar",
		KeyCopy:               "Copiar",
		KeySave:               "Salvar",
		KeyClear:              "Limpar",
		KeySaveTitle:          "Salvar QR Code como...",
		KeyFileExistsTitle:    "Arquivo existe",
		KeyFileExistsMessage:  "O arquivo já existe. Deseja sobrescrevê-lo?",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyRevealSaved:        "Mostrar último arquivo salvo",
		KeyNothingSaved:       "Nada foi salvo ainda",
		KeyEncoderBackend:     "Biblioteca QR",
		KeyErrorCorrection:    "Correção de erros",
		KeyImageSize:          "Tamanho da imagem (px)",
		KeySaveDirectory:      "Diretório inicial",
		KeyBrowse:             "Navegar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyGenerationSettings: "Geração",
		KeyInterfaceSettings:  "Interface",

		model.StatusReady:         "Pronto",
		model.StatusGenerated:     "QR Code gerado",
		model.StatusEnterText:     "Por favor, digite texto ou URL",
		model.StatusEncodeFailed:  "Não foi possível gerar o QR code",
		model.StatusTooLarge:      "Conteúdo grande demais para QR code",
		model.StatusCopied:        "Copiado para a área de transferência",
		model.StatusCopyFailed:    "Não foi possível copiar",
		model.StatusGenerateFirst: "Gere um QR code primeiro",
		model.StatusSaved:         "Salvo",
		model.StatusSaveFailed:    "Não foi possível salvar a imagem",
	}
}
