package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todo/internal/model"
)

const maxTextWidth = 80

// ItemLine renders "☑ text", faded and struck through when done.
// Text wider than maxTextWidth cells is cut to fit, tail included.
func ItemLine(it model.Item) string {
	t := Current()
	text := it.Text
	if lipgloss.Width(text) > maxTextWidth {
		text = ansi.Truncate(text, maxTextWidth, "...")
	}
	if it.Done {
		return t.Success.Render(t.BoxChecked) + " " + t.DoneText.Render(text)
	}
	return t.Muted.Render(t.BoxUnchecked) + " " + text
}

// Header renders the title line with live counts.
func Header(l model.List) string {
	t := Current()
	done, pending := l.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(l),
	)
}

// ProgressBar renders a bar with a done/total suffix.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}

// ListLines renders one line per item, prefixed with its id. With group,
// pending items come first under their own headings.
func ListLines(l model.List, group bool) []string {
	if !group {
		return flatLines(l)
	}
	var pend, done model.List
	for _, it := range l {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	t := Current()
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	lines = append(lines, sectionLines(pend)...)
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	lines = append(lines, sectionLines(done)...)
	return lines
}

func sectionLines(l model.List) []string {
	if len(l) == 0 {
		return []string{Current().Muted.Render("(none)")}
	}
	return flatLines(l)
}

func flatLines(l model.List) []string {
	if len(l) == 0 {
		return []string{Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(l))
	for _, it := range l {
		id := Current().Muted.Render(fmt.Sprintf("%3s", fmt.Sprintf("#%d", it.ID)))
		out = append(out, id+" "+ItemLine(it))
	}
	return out
}

// Panel frames lines with the theme border.
func Panel(lines []string) string {
	t := Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Summary is the framed header, progress bar and item lines for l.
func Summary(l model.List, group bool) string {
	t := Current()
	done, _ := l.Stats()
	lines := []string{Header(l), t.Muted.Render(ProgressBar(done, len(l), 28)), ""}
	lines = append(lines, ListLines(l, group)...)
	return Panel(lines)
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render(Current().SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}
