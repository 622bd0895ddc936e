package langstring

import (
	"hash/maphash"
	"strings"
)

// Value is one of LangString, *SetLangString or *MultiLangString.
// The set is closed; conversions switch over it exhaustively.
type Value interface {
	String() string
	isValue()
}

func (LangString) isValue()       {}
func (*SetLangString) isValue()   {}
func (*MultiLangString) isValue() {}

var hashSeed = maphash.MakeSeed()

// pairHash hashes one text under one language. Collections sum pair hashes so
// the result does not depend on iteration order.
func pairHash(lang, text string) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_, _ = h.WriteString(lang)
	_ = h.WriteByte(0)
	_, _ = h.WriteString(text)
	return h.Sum64()
}

// untaggedHash hashes a text without a tag. The 1 marker keeps it apart from
// the same text tagged with "".
func untaggedHash(text string) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	_ = h.WriteByte(1)
	_, _ = h.WriteString(text)
	return h.Sum64()
}

func joinFormatted(items []string) string {
	return strings.Join(items, ", ")
}
