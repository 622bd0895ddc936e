package langstring

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type langStringJSON struct {
	Text string  `json:"text"`
	Lang *string `json:"lang,omitempty"`
}

type setLangStringJSON struct {
	Texts []string `json:"texts"`
	Lang  *string  `json:"lang,omitempty"`
}

type multiLangStringJSON struct {
	Entries       map[string][]string `json:"entries"`
	Untagged      []string            `json:"untagged,omitempty"`
	PreferredLang string              `json:"preferred_lang"`
}

// MarshalJSON encodes the value as {"text":...,"lang":...}.
// The lang key is omitted for untagged values.
func (ls LangString) MarshalJSON() ([]byte, error) {
	out := langStringJSON{Text: ls.text}
	if ls.hasLang {
		out.Lang = &ls.lang
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes {"text":...,"lang":...} and validates the result
// against the shared LangString flags. A missing or null lang yields an
// untagged value.
func (ls *LangString) UnmarshalJSON(data []byte) error {
	doc, err := parseObject(data)
	if err != nil {
		return err
	}
	text, err := stringField(doc, "text", true)
	if err != nil {
		return err
	}
	lang, hasLang, err := langField(doc)
	if err != nil {
		return err
	}

	v, err := newLangString(text, lang, hasLang, nil)
	if err != nil {
		return err
	}
	*ls = v
	return nil
}

// MarshalJSON encodes the set as {"texts":[...],"lang":...} with texts sorted.
func (s *SetLangString) MarshalJSON() ([]byte, error) {
	out := setLangStringJSON{Texts: s.Texts()}
	if s.hasLang {
		out.Lang = &s.lang
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the set with the decoded one. Every text is validated
// before the receiver changes.
func (s *SetLangString) UnmarshalJSON(data []byte) error {
	doc, err := parseObject(data)
	if err != nil {
		return err
	}
	texts, err := stringArray(doc.Get("texts"), "texts")
	if err != nil {
		return err
	}
	lang, hasLang, err := langField(doc)
	if err != nil {
		return err
	}

	decoded, err := newSetLangString(texts, lang, hasLang, s.keepValidator())
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// MarshalJSON encodes the collection as
// {"entries":{"lang":[texts...]},"untagged":[texts...],"preferred_lang":...}.
// The untagged key is omitted when there are no untagged texts.
func (m *MultiLangString) MarshalJSON() ([]byte, error) {
	return json.Marshal(multiLangStringJSON{
		Entries:       m.Entries(),
		Untagged:      m.Untagged(),
		PreferredLang: m.PreferredLang(),
	})
}

// UnmarshalJSON replaces the collection with the decoded one. The whole
// document is validated before the receiver changes. A missing preferred_lang
// keeps DefaultPreferredLang.
func (m *MultiLangString) UnmarshalJSON(data []byte) error {
	doc, err := parseObject(data)
	if err != nil {
		return err
	}

	raw := doc.Get("entries")
	entries := make(map[string][]string)
	switch {
	case !raw.Exists() || raw.Type == gjson.Null:
	case raw.IsObject():
		var fieldErr error
		raw.ForEach(func(key, value gjson.Result) bool {
			texts, err := stringArray(value, "entries."+key.Str)
			if err != nil {
				fieldErr = err
				return false
			}
			entries[key.Str] = append(entries[key.Str], texts...)
			return true
		})
		if fieldErr != nil {
			return fieldErr
		}
	default:
		return fmt.Errorf("%w: entries must be an object", ErrInvalidJSON)
	}

	untagged, err := stringArray(doc.Get("untagged"), "untagged")
	if err != nil {
		return err
	}
	preferred, err := stringField(doc, "preferred_lang", false)
	if err != nil {
		return err
	}

	decoded, err := m.decoded(entries, untagged, preferred)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// decoded builds a validated collection for the decoders, keeping the
// receiver's validator when it has one.
func (m *MultiLangString) decoded(entries map[string][]string, untagged []string, preferred string) (*MultiLangString, error) {
	opts := []Option{WithPreferredLang(preferred)}
	if m.validator != nil {
		opts = append(opts, WithValidator(m.validator))
	}
	out, err := NewMultiLangString(nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := out.merge(entries, untagged); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SetLangString) keepValidator() []Option {
	if s.validator == nil {
		return nil
	}
	return []Option{WithValidator(s.validator)}
}

func parseObject(data []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%w: malformed document", ErrInvalidJSON)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object, got %s", ErrInvalidJSON, doc.Type)
	}
	return doc, nil
}

func stringField(doc gjson.Result, key string, required bool) (string, error) {
	r := doc.Get(key)
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		if required {
			return "", fmt.Errorf("%w: missing %q", ErrInvalidJSON, key)
		}
		return "", nil
	case r.Type != gjson.String:
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidJSON, key)
	}
	return r.Str, nil
}

func langField(doc gjson.Result) (string, bool, error) {
	r := doc.Get("lang")
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return "", false, nil
	case r.Type != gjson.String:
		return "", false, fmt.Errorf("%w: \"lang\" must be a string", ErrInvalidJSON)
	}
	return r.Str, true, nil
}

func stringArray(r gjson.Result, name string) ([]string, error) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: %q must be an array", ErrInvalidJSON, name)
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for i, item := range items {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("%w: %s[%d] must be a string", ErrInvalidJSON, name, i)
		}
		out = append(out, item.Str)
	}
	return out, nil
}
