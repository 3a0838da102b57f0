package prefs

import (
	"strings"

	"github.com/ghassen-kharrat/portfolio/internal/translations"
)

// Document is the rendered consequence of the preference state: the
// attributes and classes the shell applies to the page <html> element.
type Document struct {
	Lang        string
	Dir         string
	RootClasses []string
}

// ClassAttr returns the root classes as a single class attribute value.
func (d Document) ClassAttr() string {
	return strings.Join(d.RootClasses, " ")
}

// Document derives the current document state from the store.
func (s *Store) Document() Document {
	locale := s.Locale()
	a := s.Accessibility()

	classes := []string{s.Theme()}

	switch a.FontSize {
	case FontSizeSmall:
		classes = append(classes, "text-sm")
	case FontSizeLarge:
		classes = append(classes, "text-lg")
	case FontSizeXLarge:
		classes = append(classes, "text-xl")
	}

	switch a.Contrast {
	case ContrastHigh:
		classes = append(classes, "high-contrast")
	case ContrastUltra:
		classes = append(classes, "ultra-contrast")
	}

	if a.ReducedMotion {
		classes = append(classes, "reduce-motion")
	}
	if a.FocusMode {
		classes = append(classes, "focus-mode")
	}

	return Document{
		Lang:        string(locale),
		Dir:         string(translations.DirectionOf(locale)),
		RootClasses: classes,
	}
}
