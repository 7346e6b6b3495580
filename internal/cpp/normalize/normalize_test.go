package normalize

import "testing"

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "assignment", in: "  x = 5  ", want: "x=5"},
		{name: "interior whitespace", in: "print( x\t+ y )", want: "print(x+y)"},
		{name: "string spaces removed", in: `s = "a b"`, want: `s="ab"`},
		{name: "comment kept", in: "  # a comment  ", want: "# a comment"},
		{name: "def kept", in: "def f(a, b):", want: "def f(a, b):"},
		{name: "if kept", in: "if x > 5:", want: "if x > 5:"},
		{name: "else kept", in: "else:", want: "else:"},
		{name: "while kept", in: "while i < 3:", want: "while i < 3:"},
		{name: "for kept", in: "for i in range(3):", want: "for i in range(3):"},
		{name: "prefix match only", in: "format = 1", want: "format = 1"},
		{name: "unicode space", in: "x\u00a0=\u30005", want: "x=5"},
		{name: "blank", in: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Line(tt.in); got != tt.want {
				t.Fatalf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsBlock(t *testing.T) {
	t.Parallel()

	if !IsBlock("while True:") {
		t.Fatal("expected while to be a block line")
	}
	if IsBlock("# note") {
		t.Fatal("comment reported as block line")
	}
	if IsBlock("x=1") {
		t.Fatal("assignment reported as block line")
	}
}
