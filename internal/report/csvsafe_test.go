package report

import "testing"

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Midtown Storage", "Midtown Storage"},
		{"=1+2", "'=1+2"},
		{"+54", "'+54"},
		{"-3.1%", "'-3.1%"},
		{"@cmd", "'@cmd"},
		{"|pipe", "'|pipe"},
		{"%env", "'%env"},
		{"\tcell", "'\tcell"},
		{"\ncell", "'\ncell"},
		{"$54.00", "$54.00"},
	}

	for _, test := range tests {
		if got := EscapeCell(test.input); got != test.expected {
			t.Errorf("EscapeCell(%q) = %q, want %q", test.input, got, test.expected)
		}
	}
}

func TestEscapeRow(t *testing.T) {
	row := []string{"=SUM(A1)", "safe", ""}
	escaped := EscapeRow(row)

	if escaped[0] != "'=SUM(A1)" || escaped[1] != "safe" || escaped[2] != "" {
		t.Errorf("EscapeRow = %v", escaped)
	}
	// Original row untouched.
	if row[0] != "=SUM(A1)" {
		t.Error("EscapeRow must not mutate its input")
	}
}
