package entity

import "strings"

// Language is an ISO 639-1 code. Entries are Latin, the rest of the
// languages are only used for translations.
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageLatin       Language = "la"
	LanguageEnglish     Language = "en"
	LanguageCatalan     Language = "ca"
	LanguageSpanish     Language = "es"
	LanguageFrench      Language = "fr"
	LanguageGerman      Language = "de"
)

var knownLanguages = map[Language]bool{
	LanguageLatin:   true,
	LanguageEnglish: true,
	LanguageCatalan: true,
	LanguageSpanish: true,
	LanguageFrench:  true,
	LanguageGerman:  true,
}

// Code returns the language code as stored.
func (l Language) Code() string {
	return strings.TrimSpace(string(l))
}

// Known reports whether l is one of the supported languages.
func (l Language) Known() bool { return knownLanguages[l] }

// NormalizeLanguage returns lang when supported and English otherwise.
func NormalizeLanguage(lang Language) Language {
	if lang.Known() {
		return lang
	}
	return LanguageEnglish
}

// ParseLanguage turns a code or a locale such as "ca_ES.UTF-8" into a
// Language. Anything unsupported is LanguageUnspecified.
func ParseLanguage(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	if idx := strings.IndexAny(code, "_.-@"); idx >= 0 {
		code = code[:idx]
	}
	if lang := Language(code); lang.Known() {
		return lang
	}
	return LanguageUnspecified
}
