package ui

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	got := FormatTable(
		[]string{"ID", "DESCRIPTION"},
		[][]string{
			{"1", "Buy milk"},
			{"12", "x"},
		},
	)
	want := "ID  DESCRIPTION\n" +
		"1   Buy milk\n" +
		"12  x\n"
	if got != want {
		t.Errorf("FormatTable =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatTableStyledCellsAlign(t *testing.T) {
	styled := "\x1b[31m1\x1b[0m"
	got := FormatTable(
		[]string{"ID", "STATUS"},
		[][]string{
			{styled, "todo"},
			{"10", "done"},
		},
	)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines", len(lines))
	}
	// Escape sequences take no printable width, so both STATUS cells
	// start at the same column.
	if !strings.HasSuffix(lines[1], "  todo") || !strings.HasSuffix(lines[2], "  done") {
		t.Errorf("misaligned rows:\n%s", got)
	}
	if strings.Index(stripANSI(lines[1]), "todo") != strings.Index(lines[2], "done") {
		t.Errorf("columns misaligned:\n%s", got)
	}
}

func stripANSI(value string) string {
	var builder strings.Builder
	inEscape := false
	for _, r := range value {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func TestFormatTableFlattensNewlines(t *testing.T) {
	got := FormatTable([]string{"A"}, [][]string{{"line one\nline two"}})
	if strings.Count(got, "\n") != 2 {
		t.Errorf("embedded newline not flattened:\n%q", got)
	}
}

func TestFormatTableCollapsesWhitespaceRuns(t *testing.T) {
	got := FormatTable([]string{"A"}, [][]string{{"  spaced \t  out  "}})
	if !strings.Contains(got, "spaced out\n") {
		t.Errorf("whitespace run not collapsed:\n%q", got)
	}
}

func TestTableBuilder(t *testing.T) {
	builder := NewTableBuilder([]string{"A", "B"}, 1)
	builder.AddRow([]string{"1", "2"})
	if got := builder.String(); got != "A  B\n1  2\n" {
		t.Errorf("builder output = %q", got)
	}
}

func TestTruncateTableCell(t *testing.T) {
	short := "short value"
	if got := TruncateTableCell(short); got != short {
		t.Errorf("short cell changed: %q", got)
	}

	long := strings.Repeat("x", 80)
	got := TruncateTableCell(long)
	if len(got) != 50 {
		t.Errorf("truncated length = %d, want 50", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("missing ellipsis: %q", got)
	}
}
