package interp

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain Source Unchanged",
			input:    "int main(void) { return 0; }",
			expected: "int main(void) { return 0; }",
		},
		{
			name:     "CRLF To LF",
			input:    "int a;\r\nint b;\r\n",
			expected: "int a;\nint b;\n",
		},
		{
			name:     "Include Lines Dropped",
			input:    "#include <stdio.h>\nint main(void) {}",
			expected: "int main(void) {}",
		},
		{
			name:     "Indented Directive Dropped",
			input:    "  \t#define X 1\nint a;",
			expected: "int a;",
		},
		{
			name:     "Hash Mid Line Survives",
			input:    "int a; // #not a directive",
			expected: "int a; // #not a directive",
		},
		{
			name:     "Smart Quotes Fold",
			input:    "printf(“hi”);",
			expected: `printf("hi");`,
		},
		{
			name:     "Dashes Fold",
			input:    "a – b — c",
			expected: "a - b - c",
		},
		{
			name:     "Empty Input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if got != tt.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
