package interp

import (
	"strings"
	"testing"
)

func runProgram(t *testing.T, src string) *Result {
	t.Helper()
	res, err := Run(src)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return res
}

func TestRunPrograms(t *testing.T) {
	tests := []struct {
		name         string
		src          string
		expected     string
		wantExit     int
		wantWarnings int
	}{
		{
			name:     "Hello World",
			src:      `int main(void){ printf("Hello, world!\n"); return 0; }`,
			expected: "Hello, world!\n",
		},
		{
			name:     "Sum One To Ten",
			src:      `int main(void){ int s=0; for(int i=1;i<=10;i+=1){ s+=i; } printf("%d\n", s); return 0; }`,
			expected: "55\n",
		},
		{
			name:     "Trial Division Prime",
			src:      `int main(void){ int n=29; int p=1; for(int i=2;i*i<=n;i+=1){ if(n%i==0){ p=0; } } printf("%d\n", p); return 0; }`,
			expected: "1\n",
		},
		{
			name:     "Format Specifiers",
			src:      `int main(void){ printf("dec=%d hex=%X char=%c\n", 255, 255, 65); return 0; }`,
			expected: "dec=255 hex=FF char=A\n",
		},
		{
			name:         "Missing Printf Argument",
			src:          `int main(void){ printf("%d %d\n", 1); return 0; }`,
			expected:     "1 %d\n",
			wantWarnings: 1,
		},
		{
			name:     "Return Value",
			src:      `int main(void){ return 3 * 4; }`,
			expected: "",
			wantExit: 12,
		},
		{
			name:     "Fall Off The End",
			src:      `int main(void){ int x = 5; }`,
			expected: "",
			wantExit: 0,
		},
		{
			name:     "Return From Loop",
			src:      `int main(void){ for(int i=0;;i++){ if(i==3){ return i; } } }`,
			wantExit: 3,
		},
		{
			name:     "While Countdown",
			src:      `int main(void){ int i=3; while(i>0){ printf("%d", i); i--; } return 0; }`,
			expected: "321",
		},
		{
			name:     "Compound Assignment",
			src:      `int main(void){ int x=10; x+=5; x-=3; x*=2; x/=4; x%=4; printf("%d\n", x); return 0; }`,
			expected: "2\n",
		},
		{
			name:     "Uninitialized Is Zero",
			src:      `int main(void){ int x; printf("%d\n", x); return 0; }`,
			expected: "0\n",
		},
		{
			name:     "Comma Declarations Share Scope",
			src:      `int main(void){ int a=1, b=2, c; c = a + b; printf("%d\n", c); return 0; }`,
			expected: "3\n",
		},
		{
			name:     "Shadowing",
			src:      `int main(void){ int x=1; { int x=2; printf("%d", x); } printf("%d", x); return 0; }`,
			expected: "21",
		},
		{
			name:     "Assignment Through Block",
			src:      `int main(void){ int x=1; { x = 9; } printf("%d", x); return 0; }`,
			expected: "9",
		},
		{
			name:     "Loop Variable Fresh Each Iteration",
			src:      `int main(void){ int s=0; for(int i=0;i<3;i++){ int t; t = i; s += t; } printf("%d", s); return 0; }`,
			expected: "3",
		},
		{
			name:     "Eager Logical Operators",
			src:      `int main(void){ int a=0; int b=1; printf("%d %d %d %d", a&&b, a||b, !a, !b); return 0; }`,
			expected: "0 1 1 0",
		},
		{
			name:     "Unary Chain",
			src:      `int main(void){ printf("%d %d", -(-5), !!7); return 0; }`,
			expected: "5 1",
		},
		{
			name:     "Directive Lines Ignored",
			src:      "#include <stdio.h>\nint main(void){ printf(\"ok\"); return 0; }",
			expected: "ok",
		},
		{
			name:     "Smart Quotes Accepted",
			src:      "int main(void){ printf(“hi”); return 0; }",
			expected: "hi",
		},
		{
			name:     "Truncating Division",
			src:      `int main(void){ printf("%d %d", 7/2, -7/2); return 0; }`,
			expected: "3 -3",
		},
		{
			name:     "Remainder Sign",
			src:      `int main(void){ printf("%d %d", 7%3, -7%3); return 0; }`,
			expected: "1 -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runProgram(t, tt.src)
			if res.Output != tt.expected {
				t.Errorf("output = %q, want %q", res.Output, tt.expected)
			}
			if res.ExitCode != tt.wantExit {
				t.Errorf("exit code = %d, want %d", res.ExitCode, tt.wantExit)
			}
			if len(res.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d of them", res.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestRunRuntimeErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantMsg  string
		wantLine int
	}{
		{
			name:     "Division By Zero",
			src:      `int main(void){ int x=1; x = x / 0; return 0; }`,
			wantMsg:  "division by zero",
			wantLine: 1,
		},
		{
			name:     "Modulo By Zero",
			src:      `int main(void){ return 5 % 0; }`,
			wantMsg:  "modulo by zero",
			wantLine: 1,
		},
		{
			name:     "Compound Division By Zero",
			src:      "int main(void){\nint x=1;\nx /= 0;\nreturn 0;\n}",
			wantMsg:  "division by zero",
			wantLine: 3,
		},
		{
			name:     "Undefined Variable Read",
			src:      `int main(void){ return nope; }`,
			wantMsg:  "undefined variable 'nope'",
			wantLine: 1,
		},
		{
			name:     "Assignment Without Declaration",
			src:      `int main(void){ x = 1; return 0; }`,
			wantMsg:  "undeclared variable 'x'",
			wantLine: 1,
		},
		{
			name:     "Block Local Gone After Block",
			src:      "int main(void){\n{ int y = 1; }\ny = 2;\nreturn 0;\n}",
			wantMsg:  "undeclared variable 'y'",
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(tt.src)
			if err == nil {
				t.Fatalf("expected runtime error, got output %q", res.Output)
			}
			if err.Kind != KindRuntime {
				t.Errorf("error kind = %v, want %v", err.Kind, KindRuntime)
			}
			if !strings.Contains(err.Msg, tt.wantMsg) {
				t.Errorf("error msg = %q, want substring %q", err.Msg, tt.wantMsg)
			}
			if err.Line != tt.wantLine {
				t.Errorf("error line = %d, want %d", err.Line, tt.wantLine)
			}
		})
	}
}

func TestRunStepBudget(t *testing.T) {
	src := `int main(void){ while(1){ } return 0; }`

	_, err := RunWithOptions(src, Options{MaxSteps: 1000})
	if err == nil {
		t.Fatal("expected step limit error")
	}
	if err.Kind != KindRuntime {
		t.Errorf("error kind = %v, want %v", err.Kind, KindRuntime)
	}
	if !strings.Contains(err.Msg, "step limit") {
		t.Errorf("error msg = %q, want mention of step limit", err.Msg)
	}
}

func TestRunStepBudgetAllowsCompletion(t *testing.T) {
	src := `int main(void){ int s=0; for(int i=0;i<100;i++){ s+=i; } printf("%d", s); return 0; }`
	res, err := RunWithOptions(src, Options{MaxSteps: 10000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Output != "4950" {
		t.Errorf("output = %q, want 4950", res.Output)
	}
}

func TestRunOutputDiscardedOnError(t *testing.T) {
	src := `int main(void){ printf("before"); return 1 / 0; }`
	res, err := Run(src)
	if err == nil {
		t.Fatal("expected error")
	}
	if res != nil {
		t.Errorf("result should be nil on failure, got %+v", res)
	}
}

func TestRunDeterministic(t *testing.T) {
	src := `int main(void){ int s=0; for(int i=1;i<=10;i+=1){ s+=i; } printf("%d\n", s); return 0; }`
	first := runProgram(t, src)
	for i := 0; i < 5; i++ {
		res := runProgram(t, src)
		if res.Output != first.Output || res.ExitCode != first.ExitCode {
			t.Fatalf("run %d diverged: %q vs %q", i, res.Output, first.Output)
		}
	}
}

func TestRunErrorMessageShape(t *testing.T) {
	_, err := Run(`int main(void){ return 1/0; }`)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "Runtime error on line 1: division by zero" {
		t.Errorf("Error() = %q", got)
	}
}
