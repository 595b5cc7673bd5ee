package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyWelcome         = "welcome"
	KeyStartMenu       = "start_menu"
	KeyExplorer        = "explorer"
	KeyNotepad         = "notepad"
	KeyCalculator      = "calculator"
	KeySettings        = "settings"
	KeyAbout           = "about"
	KeyAboutText       = "about_text"
	KeyShutdown        = "shutdown"
	KeyShutdownConfirm = "shutdown_confirm"
	KeySearchApps      = "search_apps"
	KeyFolders         = "folders"
	KeyOpenFile        = "open_file"
	KeyShowInManager   = "show_in_manager"
	KeyOpen            = "open"
	KeySave            = "save"
	KeySaveAs          = "save_as"
	KeySaved           = "saved"
	KeySavedMessage    = "saved_message"
	KeyStartDirectory  = "start_directory"
	KeyLanguage        = "language"
	KeyClock24h        = "clock_24h"
	KeyLogLevel        = "log_level"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
	KeyRestartNote     = "restart_note"
	KeyCancel          = "cancel"
	KeyClose           = "close"
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Workbench OS",
		KeyWelcome:         "Welcome to Workbench OS.",
		KeyStartMenu:       "Menu",
		KeyExplorer:        "Explorer",
		KeyNotepad:         "Notepad",
		KeyCalculator:      "Calculator",
		KeySettings:        "Settings",
		KeyAbout:           "About",
		KeyAboutText:       "Workbench OS v%s\nA desktop for simple tasks.",
		KeyShutdown:        "Shut down",
		KeyShutdownConfirm: "Shut down Workbench OS?",
		KeySearchApps:      "Search apps",
		KeyFolders:         "Folders",
		KeyOpenFile:        "Open file",
		KeyShowInManager:   "Show in file manager",
		KeyOpen:            "Open",
		KeySave:            "Save",
		KeySaveAs:          "Save as",
		KeySaved:           "Saved",
		KeySavedMessage:    "File saved:\n%s (%s)",
		KeyStartDirectory:  "Start directory",
		KeyLanguage:        "Language",
		KeyClock24h:        "24-hour clock",
		KeyLogLevel:        "Log level",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartNote:     "Language changes apply after restart.",
		KeyCancel:          "Cancel",
		KeyClose:           "Close",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Workbench OS",
		KeyWelcome:         "Добро пожаловать в Workbench OS.",
		KeyStartMenu:       "Меню",
		KeyExplorer:        "Проводник",
		KeyNotepad:         "Блокнот",
		KeyCalculator:      "Калькулятор",
		KeySettings:        "Настройки",
		KeyAbout:           "О системе",
		KeyAboutText:       "Workbench OS v%s\nОС для выполнения простых задач.",
		KeyShutdown:        "Выход",
		KeyShutdownConfirm: "Завершить работу Workbench OS?",
		KeySearchApps:      "Поиск приложений",
		KeyFolders:         "Папки",
		KeyOpenFile:        "Открыть файл",
		KeyShowInManager:   "Показать в файловом менеджере",
		KeyOpen:            "Открыть",
		KeySave:            "Сохранить",
		KeySaveAs:          "Сохранить как",
		KeySaved:           "Сохранено",
		KeySavedMessage:    "Файл сохранён:\n%s (%s)",
		KeyStartDirectory:  "Начальная папка",
		KeyLanguage:        "Язык",
		KeyClock24h:        "24-часовой формат",
		KeyLogLevel:        "Уровень журнала",
		KeyBrowse:          "Обзор",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyRestartNote:     "Смена языка применяется после перезапуска.",
		KeyCancel:          "Отмена",
		KeyClose:           "Закрыть",
	}
}
