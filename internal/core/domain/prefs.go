package domain

// Language is a UI language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Direction returns the text direction for the language.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// Theme is a UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences are the durable per-operator UI settings. They survive logout.
type Preferences struct {
	Language Language `json:"language"`
	Theme    Theme    `json:"theme"`
}

// DefaultPreferences are used when nothing has been persisted yet.
func DefaultPreferences() Preferences {
	return Preferences{Language: LanguageEnglish, Theme: ThemeLight}
}
