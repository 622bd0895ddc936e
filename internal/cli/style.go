package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/dmitrymomot/langstring"
)

var (
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F3F4F6"})
	langStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"}).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// printer writes command output, colored only when it goes to a terminal.
type printer struct {
	out   io.Writer
	color bool
}

func newPrinter(out io.Writer, noColor bool) *printer {
	color := false
	if f, ok := out.(*os.File); ok && !noColor {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &printer{out: out, color: color}
}

func (p *printer) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// value prints one LangString in the layout described by r.
func (p *printer) value(ls langstring.LangString, r renderFlags) {
	if !p.color || ls.Lang() == "" || !r.showLang {
		p.line(ls.Render(r.options()...))
		return
	}
	text := ls.Render(append(r.options(), langstring.WithLang(false))...)
	p.line(p.paint(textStyle, text) + r.separator + p.paint(langStyle, ls.Lang()))
}

func (p *printer) ok(msg string) {
	p.line(p.paint(okStyle, "ok") + "   " + msg)
}

func (p *printer) fail(msg string) {
	p.line(p.paint(failStyle, "fail") + " " + msg)
}

func (p *printer) muted(format string, args ...any) {
	p.line(p.paint(mutedStyle, fmt.Sprintf(format, args...)))
}

func (p *printer) line(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// renderFlags are the output layout flags shared by render and inspect.
type renderFlags struct {
	noQuotes  bool
	showLang  bool
	separator string
}

func (r renderFlags) options() []langstring.RenderOption {
	return []langstring.RenderOption{
		langstring.WithQuotes(!r.noQuotes),
		langstring.WithLang(r.showLang),
		langstring.WithSeparator(r.separator),
	}
}
