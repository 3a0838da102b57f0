// Package prefs implements the visitor preference store: a small set of
// named settings with closed value domains, total defaults, durable
// persistence and document-level side effects (root classes, lang, dir).
package prefs

import (
	"encoding/json"

	"github.com/ghassen-kharrat/portfolio/internal/entities"
	"github.com/ghassen-kharrat/portfolio/internal/translations"
)

// Key names a preference. The string value doubles as the storage key.
type Key string

const (
	KeyTheme         Key = entities.PreferenceKeyTheme
	KeyLocale        Key = entities.PreferenceKeyLocale
	KeyAccessibility Key = entities.PreferenceKeyAccessibility
)

// Keys lists every defined preference key.
var Keys = []Key{KeyTheme, KeyLocale, KeyAccessibility}

// Theme values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Accessibility is the record-shaped preference controlling reading aids.
// The zero-ish "all normal/off" state is the documented default.
type Accessibility struct {
	FontSize      string `json:"fontSize"`
	Contrast      string `json:"contrast"`
	ReducedMotion bool   `json:"reducedMotion"`
	FocusMode     bool   `json:"focusMode"`
}

// Accessibility enum values
const (
	FontSizeSmall  = "small"
	FontSizeNormal = "normal"
	FontSizeLarge  = "large"
	FontSizeXLarge = "xlarge"

	ContrastNormal = "normal"
	ContrastHigh   = "high"
	ContrastUltra  = "ultra"
)

// DefaultAccessibility returns the all-normal accessibility record.
func DefaultAccessibility() Accessibility {
	return Accessibility{
		FontSize: FontSizeNormal,
		Contrast: ContrastNormal,
	}
}

// definition describes one preference: its default and value validation.
type definition struct {
	defaultValue string
	valid        func(value string) bool
}

var definitions = map[Key]definition{
	KeyTheme: {
		defaultValue: ThemeDark,
		valid: func(v string) bool {
			return v == ThemeDark || v == ThemeLight
		},
	},
	KeyLocale: {
		defaultValue: string(translations.LocaleEnglish),
		valid: func(v string) bool {
			return translations.IsSupported(translations.Locale(v))
		},
	},
	KeyAccessibility: {
		defaultValue: mustEncodeAccessibility(DefaultAccessibility()),
		valid: func(v string) bool {
			a, err := DecodeAccessibility(v)
			if err != nil {
				return false
			}
			return validAccessibility(a)
		},
	},
}

// IsDefined reports whether the key names a known preference.
func IsDefined(key Key) bool {
	_, ok := definitions[key]
	return ok
}

// Default returns the documented default value for a key, or "" for an
// unknown key.
func Default(key Key) string {
	return definitions[key].defaultValue
}

// DecodeAccessibility parses the JSON-encoded accessibility record. Fields
// left empty decode as their zero value; the caller decides whether that is
// acceptable (it is not for stored values, which are always fully encoded).
func DecodeAccessibility(raw string) (Accessibility, error) {
	var a Accessibility
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return Accessibility{}, err
	}
	if a.FontSize == "" {
		a.FontSize = FontSizeNormal
	}
	if a.Contrast == "" {
		a.Contrast = ContrastNormal
	}
	return a, nil
}

// EncodeAccessibility serializes an accessibility record for storage.
func EncodeAccessibility(a Accessibility) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func mustEncodeAccessibility(a Accessibility) string {
	data, err := EncodeAccessibility(a)
	if err != nil {
		panic(err)
	}
	return data
}

func validAccessibility(a Accessibility) bool {
	switch a.FontSize {
	case FontSizeSmall, FontSizeNormal, FontSizeLarge, FontSizeXLarge:
	default:
		return false
	}
	switch a.Contrast {
	case ContrastNormal, ContrastHigh, ContrastUltra:
	default:
		return false
	}
	return true
}
