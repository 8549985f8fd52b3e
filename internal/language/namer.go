package language

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NoLinguisticContent is the name reported for codes that carry no language.
const NoLinguisticContent = "No linguistic content"

var (
	// ErrUnknownCode means the code could not be named.
	ErrUnknownCode = errors.New("language: unknown code")
	// ErrResolutionUnavailable means the naming service cannot answer at all.
	ErrResolutionUnavailable = errors.New("language: resolution unavailable")
)

// Namer resolves a language code to an English display name.
type Namer interface {
	Name(code string) (string, error)
}

// NamerFunc adapts a plain function to Namer.
type NamerFunc func(code string) (string, error)

func (f NamerFunc) Name(code string) (string, error) {
	return f(code)
}

// XTextNamer names the primary language subtag using the CLDR English
// display names shipped with golang.org/x/text.
type XTextNamer struct {
	names display.Namer
}

func NewXTextNamer() *XTextNamer {
	return &XTextNamer{names: display.English.Languages()}
}

func (n *XTextNamer) Name(code string) (string, error) {
	if n == nil || n.names == nil {
		return "", ErrResolutionUnavailable
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrUnknownCode
	}
	// Base() guesses a language for "und", so the raw subtag is checked first.
	switch strings.ToLower(primarySubtag(code)) {
	case "und", "zxx":
		return NoLinguisticContent, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", ErrUnknownCode
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return "", ErrUnknownCode
	}
	name := n.names.Name(language.Make(base.String()))
	if name == "" {
		return "", ErrUnknownCode
	}
	return name, nil
}

func primarySubtag(code string) string {
	if i := strings.IndexAny(code, "-_"); i >= 0 {
		return code[:i]
	}
	return code
}
