package clip

import "testing"

func TestLooksLikeDiagramPrefix(t *testing.T) {
	cases := []string{
		"graph TD\n A-->B",
		"  flowchart LR\n x --> y",
		"sequenceDiagram\n Alice->>Bob: hi",
		"pie title Pets\n \"Dogs\": 3",
	}
	for _, c := range cases {
		if !LooksLikeDiagram(c) {
			t.Fatalf("expected match for %q", c)
		}
	}
}

func TestLooksLikeDiagramStandaloneToken(t *testing.T) {
	if !LooksLikeDiagram("my notes\ngantt\nsection A") {
		t.Fatalf("expected standalone token match")
	}
}

func TestLooksLikeDiagramRejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"hello world",
		"photograph of a gantry crane", // keyword only as substring
	}
	for _, c := range cases {
		if LooksLikeDiagram(c) {
			t.Fatalf("unexpected match for %q", c)
		}
	}
}
