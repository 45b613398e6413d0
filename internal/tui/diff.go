package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"mermed/internal/tui/util"
)

// renderUnsavedDiff renders a unified diff between the on-disk baseline and
// the current buffer, with char-level highlights on changed line pairs.
func renderUnsavedDiff(baseline, current string, pal util.Palette) string {
	if baseline == current {
		return "No unsaved changes\n"
	}
	delLine := lipgloss.NewStyle().Foreground(pal.Danger)
	addLine := lipgloss.NewStyle().Foreground(pal.Success)
	delChar := delLine.Underline(true)
	addChar := addLine.Underline(true)
	faint := lipgloss.NewStyle().Faint(true)

	bLines := strings.Split(baseline, "\n")
	aLines := strings.Split(current, "\n")
	var sb strings.Builder
	sb.WriteString("Unsaved changes (on disk vs buffer)\n\n")
	if len(bLines) == len(aLines) {
		for i := range bLines {
			bl, al := bLines[i], aLines[i]
			if bl == al {
				if strings.TrimSpace(bl) != "" {
					sb.WriteString("  " + faint.Render(bl) + "\n")
				}
				continue
			}
			d := dmp.New()
			diffs := d.DiffMain(bl, al, false)
			d.DiffCleanupSemantic(diffs)
			sb.WriteString(delLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(delChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(delLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
			sb.WriteString(addLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(addChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(addLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}
	// Line counts differ: raw blocks.
	for _, l := range bLines {
		sb.WriteString(delLine.Render("- ") + l + "\n")
	}
	sb.WriteString("\n")
	for _, l := range aLines {
		sb.WriteString(addLine.Render("+ ") + l + "\n")
	}
	return sb.String()
}
