package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Mode", "Score", "WPM"}
	rows := [][]string{
		{"normal", "1250", "48"},
		{"boss_battle", "320", "5"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Mode        Score WPM" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "normal       1250  48" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "boss_battle   320   5" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
