// Package local holds persona-keyed text sets for the fixed strings the
// bot speaks on its own behalf (greetings, fallback errors, nudges).
// Each set carries a default text plus optional per-persona overrides.
package local

import "fmt"

type Persona string

const (
	PersonaDefault    = Persona("default")
	PersonaAgronomist = Persona("agronomist")
)

func ParsePersona(s string) Persona {
	switch s {
	case "agronomist":
		return PersonaAgronomist
	default:
		return PersonaDefault
	}
}

type Variant struct {
	persona Persona
	text    string
}

type TextSet struct {
	Default  string
	variants map[Persona]string
}

func NewVariant(persona Persona, text string) Variant {
	return Variant{
		persona: persona,
		text:    text,
	}
}

func NewSet(defaultText string, variants ...Variant) TextSet {
	set := TextSet{
		Default:  defaultText,
		variants: make(map[Persona]string),
	}
	for _, variant := range variants {
		set.variants[variant.persona] = variant.text
	}
	return set
}

func (s TextSet) Text(persona Persona) string {
	if text, ok := s.variants[persona]; ok {
		return text
	}
	return s.Default
}

func (s TextSet) Format(persona Persona, a ...any) string {
	return fmt.Sprintf(s.Text(persona), a...)
}
