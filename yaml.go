package langstring

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type langStringYAML struct {
	Text *string `yaml:"text"`
	Lang *string `yaml:"lang,omitempty"`
}

type setLangStringYAML struct {
	Texts []string `yaml:"texts"`
	Lang  *string  `yaml:"lang,omitempty"`
}

type multiLangStringYAML struct {
	Entries       map[string][]string `yaml:"entries"`
	Untagged      []string            `yaml:"untagged,omitempty"`
	PreferredLang string              `yaml:"preferred_lang,omitempty"`
}

// MarshalYAML encodes the value as a mapping with text and lang keys.
func (ls LangString) MarshalYAML() (any, error) {
	out := langStringYAML{Text: &ls.text}
	if ls.hasLang {
		out.Lang = &ls.lang
	}
	return out, nil
}

// UnmarshalYAML decodes a text/lang mapping. A missing or null lang yields an
// untagged value.
func (ls *LangString) UnmarshalYAML(node *yaml.Node) error {
	var raw langStringYAML
	if err := decodeMapping(node, &raw); err != nil {
		return err
	}
	if raw.Text == nil {
		return fmt.Errorf("%w: missing \"text\"", ErrInvalidYAML)
	}

	lang := ""
	if raw.Lang != nil {
		lang = *raw.Lang
	}
	v, err := newLangString(*raw.Text, lang, raw.Lang != nil, nil)
	if err != nil {
		return err
	}
	*ls = v
	return nil
}

// MarshalYAML encodes the set as a mapping with sorted texts and lang.
func (s *SetLangString) MarshalYAML() (any, error) {
	out := setLangStringYAML{Texts: s.Texts()}
	if s.hasLang {
		out.Lang = &s.lang
	}
	return out, nil
}

// UnmarshalYAML replaces the set with the decoded one.
func (s *SetLangString) UnmarshalYAML(node *yaml.Node) error {
	var raw setLangStringYAML
	if err := decodeMapping(node, &raw); err != nil {
		return err
	}

	lang := ""
	if raw.Lang != nil {
		lang = *raw.Lang
	}
	decoded, err := newSetLangString(raw.Texts, lang, raw.Lang != nil, s.keepValidator())
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// MarshalYAML encodes the collection as entries, untagged and preferred_lang.
func (m *MultiLangString) MarshalYAML() (any, error) {
	return multiLangStringYAML{
		Entries:       m.Entries(),
		Untagged:      m.Untagged(),
		PreferredLang: m.PreferredLang(),
	}, nil
}

// UnmarshalYAML replaces the collection with the decoded one.
func (m *MultiLangString) UnmarshalYAML(node *yaml.Node) error {
	var raw multiLangStringYAML
	if err := decodeMapping(node, &raw); err != nil {
		return err
	}

	decoded, err := m.decoded(raw.Entries, raw.Untagged, raw.PreferredLang)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

func decodeMapping(node *yaml.Node, out any) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidYAML, node.Line)
	}
	if err := node.Decode(out); err != nil {
		return errors.Join(ErrInvalidYAML, err)
	}
	return nil
}
