package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// MermaidCLI renders through the mermaid-cli executable (mmdc). Each call
// writes the source to a scratch .mmd file, runs mmdc, and reads back the
// produced SVG. The subprocess is never aborted mid-render; a superseded
// call simply has its result discarded by the scheduler.
type MermaidCLI struct {
	// Binary overrides the executable name (default "mmdc").
	Binary string
	logf   func(format string, args ...any)
}

func NewMermaidCLI(logf func(string, ...any)) *MermaidCLI {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &MermaidCLI{logf: logf}
}

func (m *MermaidCLI) Render(ctx context.Context, source, theme string) (string, error) {
	dir, err := os.MkdirTemp("", "mermed-render-")
	if err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "diagram.mmd")
	out := filepath.Join(dir, "diagram.svg")
	if err := os.WriteFile(in, []byte(source), 0o644); err != nil {
		return "", fmt.Errorf("write source: %w", err)
	}

	args := []string{"-i", in, "-o", out, "-q"}
	if theme != "" {
		args = append(args, "-t", theme)
	}
	bin := m.Binary
	if bin == "" {
		bin = findBinary("mmdc")
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	m.logf("render: %s %s", bin, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s", msg)
		}
		return "", fmt.Errorf("mmdc: %w", err)
	}

	markup, err := os.ReadFile(out)
	if err != nil {
		return "", fmt.Errorf("read output: %w", err)
	}
	return string(markup), nil
}

// lastLine extracts the final non-empty stderr line, which is where mmdc
// puts its parse error summary.
func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

func findBinary(name string) string {
	if p, err := exec.LookPath(name); err == nil {
		return p
	}
	// Windows fallback with .cmd (mmdc ships as an npm shim)
	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".cmd") {
		if p, err := exec.LookPath(name + ".cmd"); err == nil {
			return p
		}
	}
	return name // let exec fail and print a clearer error
}
