package goweft

import "strings"

// LanguageNames maps locale codes to human-readable names for provider prompts.
var LanguageNames = map[string]string{
	"en_US": "English (United States)",
	"en_GB": "English (United Kingdom)",
	"de_DE": "German (Germany)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French (France)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"ko_KR": "Korean (South Korea)",
	"nl_NL": "Dutch (Netherlands)",
	"pl_PL": "Polish (Poland)",
	"pt_BR": "Portuguese (Brazil)",
	"pt_PT": "Portuguese (Portugal)",
	"ru_RU": "Russian (Russia)",
	"tr_TR": "Turkish (Turkey)",
	"uk_UA": "Ukrainian (Ukraine)",
	"zh_CN": "Chinese (Simplified)",
	"zh_TW": "Chinese (Traditional)",
	"ar_SA": "Arabic (Saudi Arabia)",
	"he_IL": "Hebrew (Israel)",
	"hi_IN": "Hindi (India)",
	"cs_CZ": "Czech (Czech Republic)",
	"da_DK": "Danish (Denmark)",
	"fi_FI": "Finnish (Finland)",
	"sv_SE": "Swedish (Sweden)",
	"nb_NO": "Norwegian Bokmål (Norway)",
}

// shortCodeToLocale maps short language codes to full locale codes.
var shortCodeToLocale = map[string]string{
	"en": "en_US",
	"de": "de_DE",
	"es": "es_ES",
	"fr": "fr_FR",
	"it": "it_IT",
	"ja": "ja_JP",
	"ko": "ko_KR",
	"nl": "nl_NL",
	"pl": "pl_PL",
	"pt": "pt_BR",
	"ru": "ru_RU",
	"zh": "zh_CN",
	"ar": "ar_SA",
	"he": "he_IL",
	"hi": "hi_IN",
	"tr": "tr_TR",
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(langCode string) string {
	code := NormalizeLocale(langCode)
	if name, ok := LanguageNames[code]; ok {
		return name
	}
	if locale, ok := shortCodeToLocale[code]; ok {
		if name, ok := LanguageNames[locale]; ok {
			return name
		}
	}
	return langCode
}

// NormalizeLocale converts a language code to the standard underscore
// format (e.g. "es-ES" → "es_ES").
func NormalizeLocale(langCode string) string {
	return strings.ReplaceAll(langCode, "-", "_")
}

// BaseLang extracts the lowercase base language code (e.g. "en" from
// "en_US" or "en-GB").
func BaseLang(langCode string) string {
	code := NormalizeLocale(langCode)
	if i := strings.Index(code, "_"); i >= 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}

// SameLanguage reports whether two language codes match exactly or share
// the same base language (e.g. "fr" and "fr_FR").
func SameLanguage(a, b string) bool {
	na, nb := NormalizeLocale(a), NormalizeLocale(b)
	if strings.EqualFold(na, nb) {
		return true
	}
	return BaseLang(na) == BaseLang(nb)
}
