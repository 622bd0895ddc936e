// Package cli implements the langstring command: render, check and inspect
// language-tagged strings from the shell.
package cli
