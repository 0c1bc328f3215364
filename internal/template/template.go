// Package template builds validated WhatsApp Cloud API template-message
// payloads. Values are assembled bottom-up: leaf parameter values feed
// components, components feed the Template root. Every constructor either
// returns a complete immutable value or an error; there is no partial
// construction and no mutation after the fact, so values are safe to share
// and to hand straight to a JSON encoder.
package template

import "fmt"

// Language selects the template translation to render.
type Language struct {
	Code   string `json:"code"`
	Policy string `json:"policy"`
}

// NewLanguage builds a language selector from a BCP-47-like code
// ("en", "en_US"). The policy argument is accepted for call-site
// compatibility but the emitted policy is always "deterministic" — the
// only policy the Cloud API still supports.
func NewLanguage(code, policy string) (*Language, error) {
	if code == "" {
		return nil, ErrCodeRequired
	}
	return &Language{Code: code, Policy: "deterministic"}, nil
}

// Template is the root descriptor for one templated outbound message.
type Template struct {
	Name       string      `json:"name"`
	Language   Language    `json:"language"`
	Components []Component `json:"components,omitempty"`
}

// New assembles and validates a template. language may be a Language,
// *Language, or a raw code string (a Language is built from it). Button
// components must occupy distinct indices; everything else about component
// order is preserved as given. Components may be omitted entirely for
// pure-text templates.
func New(name string, language any, components ...Component) (*Template, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	lang, err := resolveLanguage(language)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, c := range components {
		b, ok := c.(*ButtonComponent)
		if !ok {
			continue
		}
		if seen[b.Index] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateButtonIndex, b.Index)
		}
		seen[b.Index] = true
	}

	t := &Template{Name: name, Language: *lang}
	if len(components) > 0 {
		t.Components = components
	}
	return t, nil
}

func resolveLanguage(language any) (*Language, error) {
	switch l := language.(type) {
	case nil:
		return nil, ErrLanguageRequired
	case Language:
		return &l, nil
	case *Language:
		if l == nil {
			return nil, ErrLanguageRequired
		}
		return l, nil
	case string:
		return NewLanguage(l, "")
	default:
		return nil, fmt.Errorf("%w: unsupported language type %T", ErrLanguageRequired, language)
	}
}
