package view

import "testing"

func TestProjectIdentity(t *testing.T) {
	content := []string{"ab", "cd"}
	out := Project(content, Identity(), 3, 3)
	if len(out) != 3 {
		t.Fatalf("rows = %d, want 3", len(out))
	}
	if out[0] != "ab " || out[1] != "cd " || out[2] != "   " {
		t.Fatalf("out = %q", out)
	}
}

func TestProjectPan(t *testing.T) {
	content := []string{"abc"}
	// Pan right by one cell: content shifts right, first column blank.
	out := Project(content, Translate(1, 0), 4, 1)
	if out[0] != " abc" {
		t.Fatalf("out = %q, want \" abc\"", out[0])
	}
}

func TestProjectOutOfBoundsIsBlank(t *testing.T) {
	out := Project([]string{"x"}, Translate(-5, -5), 2, 2)
	if out[0] != "  " || out[1] != "  " {
		t.Fatalf("out = %q, want all blanks", out)
	}
}

func TestProjectZoomDoublesCells(t *testing.T) {
	content := []string{"ab"}
	// Scale 2 about the origin: each source cell covers two output cells.
	out := Project(content, Scale(2), 4, 1)
	if out[0] != "aabb" {
		t.Fatalf("out = %q, want \"aabb\"", out[0])
	}
}

func TestProjectZeroSize(t *testing.T) {
	if out := Project([]string{"x"}, Identity(), 0, 5); out != nil {
		t.Fatalf("out = %q, want nil", out)
	}
}
