// Package sanitizer turns markup-bearing input into plain text before it is
// stored as a language-tagged value.
//
// Output is plain text, not HTML: entities are decoded after the markup is
// removed, so the result must be escaped again before it is written into a
// page.
package sanitizer
