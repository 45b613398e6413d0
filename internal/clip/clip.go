// Package clip implements the startup clipboard import: if the clipboard
// holds text that looks like diagram source, the shell offers to adopt it.
package clip

import (
	"strings"

	"github.com/atotto/clipboard"
)

// diagramKeywords are the Mermaid top-level diagram introducers. A match is
// heuristic only; actual validation stays with the external renderer.
var diagramKeywords = []string{
	"graph",
	"flowchart",
	"sequenceDiagram",
	"classDiagram",
	"stateDiagram",
	"stateDiagram-v2",
	"erDiagram",
	"journey",
	"gantt",
	"pie",
	"gitGraph",
	"mindmap",
	"timeline",
	"quadrantChart",
}

// Read returns the clipboard text, or "" on any failure; a broken clipboard
// is never an error worth surfacing at startup.
func Read() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// LooksLikeDiagram reports whether text plausibly is Mermaid source: a known
// keyword as the prefix of the trimmed text, or appearing as a standalone
// token anywhere in it.
func LooksLikeDiagram(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, kw := range diagramKeywords {
		if strings.HasPrefix(trimmed, kw) {
			return true
		}
	}
	for _, tok := range strings.Fields(trimmed) {
		for _, kw := range diagramKeywords {
			if tok == kw {
				return true
			}
		}
	}
	return false
}
