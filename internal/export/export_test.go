package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="10" viewBox="0 0 20 10"><rect x="1" y="1" width="18" height="8" fill="#333"/></svg>`

func TestSVGWritesVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), SVGName)
	if err := SVG(sampleSVG, path); err != nil {
		t.Fatalf("svg: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != sampleSVG {
		t.Fatalf("exported svg was transformed: %q", data)
	}
}

func TestSVGRejectsEmptyMarkup(t *testing.T) {
	err := SVG("  ", filepath.Join(t.TempDir(), SVGName))
	if !errors.Is(err, ErrNothingRendered) {
		t.Fatalf("err = %v, want ErrNothingRendered", err)
	}
}

func TestPNGRasterizesAtDoubleDensity(t *testing.T) {
	path := filepath.Join(t.TempDir(), PNGName)
	if err := PNG(sampleSVG, path); err != nil {
		t.Fatalf("png: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty png written")
	}
}

func TestPNGRejectsEmptyMarkup(t *testing.T) {
	err := PNG("", filepath.Join(t.TempDir(), PNGName))
	if !errors.Is(err, ErrNothingRendered) {
		t.Fatalf("err = %v, want ErrNothingRendered", err)
	}
}

func TestPNGSurfacesParseFailure(t *testing.T) {
	err := PNG("<svg", filepath.Join(t.TempDir(), PNGName))
	if err == nil {
		t.Fatalf("expected parse error for malformed svg")
	}
}
