package syncprint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/macropower/verbump/pkg/versync"
)

// ErrUnknownColorMode is returned by [GetColorMode] for unrecognized modes.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode controls whether output is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// GetColorMode parses a color mode, defaulting to [ColorAuto] when empty.
func GetColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

type styles struct {
	version lipgloss.Style
	path    lipgloss.Style
	faint   lipgloss.Style
	check   lipgloss.Style
	warn    lipgloss.Style
	dot     lipgloss.Style
	cross   lipgloss.Style
	add     lipgloss.Style
	del     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		version: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		path:    r.NewStyle().Foreground(lipgloss.Color("211")),
		faint:   r.NewStyle().Faint(true),
		check:   r.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓"),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")).SetString("⚠"),
		dot:     r.NewStyle().Faint(true).SetString("·"),
		cross:   r.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗"),
		add:     r.NewStyle().Foreground(lipgloss.Color("42")),
		del:     r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Printer writes human-readable progress for synchronization and check runs.
type Printer struct {
	w      io.Writer
	styles styles
	counts map[versync.Outcome]int
	dryRun bool
}

// NewPrinter creates a [Printer] writing to w.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if isTerminal(w) {
			r.SetColorProfile(termenv.EnvColorProfile())
		} else {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Printer{
		w:      w,
		styles: newStyles(r),
		counts: map[versync.Outcome]int{},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Handle prints a [versync.Synchronizer] event. It can be passed to
// [versync.Synchronizer.Subscribe].
func (p *Printer) Handle(evt any) {
	switch e := evt.(type) {
	case versync.EventStarted:
		p.dryRun = e.DryRun
		p.printStarted(e)
	case versync.EventTargetDone:
		p.counts[e.Result.Outcome]++
		p.printResult(e.Result)
	case versync.EventDone:
		p.printSummary()
	}
}

func (p *Printer) printStarted(e versync.EventStarted) {
	suffix := ""
	if e.DryRun {
		suffix = p.styles.faint.Render(" (dry run)")
	}

	p.printf("Bumping version %s → %s%s\n",
		p.styles.version.Render(e.OldVersion),
		p.styles.version.Render(e.NewVersion),
		suffix,
	)
}

func (p *Printer) printResult(res versync.Result) {
	path := p.styles.path.Render(res.Target.Path)

	switch res.Outcome {
	case versync.OutcomeUpdated:
		verb := "updated"
		if p.dryRun {
			verb = "would be updated"
		}

		p.printf("  %s %s %s %s\n", p.styles.check, path, verb,
			p.styles.faint.Render(plural(res.Replacements, "replacement")))

		if res.Diff != "" {
			p.printDiff(res.Diff)
		}
	case versync.OutcomeUnchanged:
		p.printf("  %s %s no changes needed\n", p.styles.dot, path)
	case versync.OutcomeMissing:
		p.printf("  %s %s not found, skipped\n", p.styles.warn, path)
	case versync.OutcomeFailed:
		p.printf("  %s %s failed: %v\n", p.styles.cross, path, res.Err)
	}
}

func (p *Printer) printDiff(diff string) {
	for line := range strings.SplitSeq(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = p.styles.faint.Render(line)
		case strings.HasPrefix(line, "+"):
			line = p.styles.add.Render(line)
		case strings.HasPrefix(line, "-"):
			line = p.styles.del.Render(line)
		}

		p.printf("      %s\n", line)
	}
}

func (p *Printer) printSummary() {
	updated := "updated"
	if p.dryRun {
		updated = "to update"
	}

	p.printf("%d %s, %d unchanged, %d missing, %d failed\n",
		p.counts[versync.OutcomeUpdated], updated,
		p.counts[versync.OutcomeUnchanged],
		p.counts[versync.OutcomeMissing],
		p.counts[versync.OutcomeFailed],
	)
}

// PrintCheck prints the results of a check run.
func (p *Printer) PrintCheck(r *versync.CheckReport) {
	p.printf("Checking version %s\n", p.styles.version.Render(r.Version))

	for _, res := range r.Results {
		path := p.styles.path.Render(res.Target.Path)

		switch res.Status {
		case versync.StatusInSync:
			p.printf("  %s %s in sync\n", p.styles.check, path)
		case versync.StatusDrift:
			if len(res.Stale) > 0 {
				p.printf("  %s %s has stale %s\n", p.styles.cross, path, strings.Join(res.Stale, ", "))
			} else {
				p.printf("  %s %s does not carry %s\n", p.styles.cross, path, r.Version)
			}
		case versync.StatusMissing:
			p.printf("  %s %s not found, skipped\n", p.styles.warn, path)
		case versync.StatusFailed:
			p.printf("  %s %s failed: %v\n", p.styles.cross, path, res.Err)
		}
	}

	p.printf("%d in sync, %d drifted, %d missing, %d failed\n",
		r.Count(versync.StatusInSync),
		r.Count(versync.StatusDrift),
		r.Count(versync.StatusMissing),
		r.Count(versync.StatusFailed),
	)
}

func (p *Printer) printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...) //nolint:errcheck // Console output is best-effort.
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("(%d %s)", n, word)
	}

	return fmt.Sprintf("(%d %ss)", n, word)
}
