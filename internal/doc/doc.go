// Package doc owns the on-disk side of the current document: its path, the
// text last seen on disk, and the dirty flag derived from them. The editor
// widget owns the live buffer; this package only ever sees snapshots.
package doc

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName is the save-prompt default for unnamed documents, following
// the .mmd extension convention for diagram source.
const DefaultName = "diagram.mmd"

type Document struct {
	path     string
	baseline string // text as last read from or written to disk
	named    bool
}

func New() *Document { return &Document{} }

func (d *Document) Path() string { return d.path }

// Name returns the display name: the file's base name, or DefaultName for
// a document that has never touched disk.
func (d *Document) Name() string {
	if !d.named {
		return DefaultName
	}
	return filepath.Base(d.path)
}

// Dirty reports whether the snapshot differs from what is on disk.
func (d *Document) Dirty(snapshot string) bool {
	return snapshot != d.baseline
}

// Baseline returns the last on-disk text.
func (d *Document) Baseline() string { return d.baseline }

// Open reads the file verbatim and adopts it as the current document.
// On failure the document is left untouched.
func (d *Document) Open(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	d.path = path
	d.named = true
	d.baseline = string(data)
	return d.baseline, nil
}

// Save writes the snapshot verbatim to path. The baseline (and with it the
// dirty flag) advances only when the write succeeds; a failed save leaves
// the document dirty.
func (d *Document) Save(path, snapshot string) error {
	if err := os.WriteFile(path, []byte(snapshot), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	d.path = path
	d.named = true
	d.baseline = snapshot
	return nil
}
