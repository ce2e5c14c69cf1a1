package format

import (
	"strings"
	"time"
)

// persianDigits maps ASCII digits to Extended Arabic-Indic digits used in
// Persian text.
var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

// Date formats a date in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "fa":
		return Digits(t.Format("2006/01/02"), "fa")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// Digits localizes the digits in s; Persian output uses Persian numerals.
func Digits(s, lang string) string {
	if strings.ToLower(lang) == "fa" {
		return persianDigits.Replace(s)
	}
	return s
}
