package lower

import "testing"

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		want     string
		wantKind Kind
	}{
		{name: "integer", in: "x=5", want: "int x = 5;\n", wantKind: KindInt},
		{name: "comment", in: "# greeting", want: "// greeting\n", wantKind: KindComment},
		{name: "print", in: "print(x)", want: "cout << x << endl;\n", wantKind: KindPrint},
		{name: "comparison passes through", in: "x==5", want: "x==5;\n", wantKind: KindPassthrough},
		{name: "block keyword", in: "if x > 5:", want: "if x > 5:;\n", wantKind: KindPassthrough},
		{name: "block operators substituted", in: "if a and b:", want: "if a && b:;\n", wantKind: KindPassthrough},
		{name: "print inside assignment", in: "x=print(y)", want: "auto x = print(y);\n", wantKind: KindAuto},
		{name: "print with comparison", in: "print(x==1)", want: "cout << x==1 << endl;\n", wantKind: KindPrint},
		{name: "unsubstituted exponent", in: "y=x**2", want: "auto y = x**2;\n", wantKind: KindAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewContext().Line(tt.in)
			if got.Text != tt.want {
				t.Fatalf("Line(%q).Text = %q, want %q", tt.in, got.Text, tt.want)
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("Line(%q).Kind = %q, want %q", tt.in, got.Kind, tt.wantKind)
			}
			if got.ClosingBlocks != 0 {
				t.Fatalf("Line(%q).ClosingBlocks = %d, want 0", tt.in, got.ClosingBlocks)
			}
		})
	}
}

func TestLineSharesRegistryAcrossCalls(t *testing.T) {
	t.Parallel()

	ctx := NewContext()
	steps := []struct {
		in   string
		want string
	}{
		{in: "x=5", want: "int x = 5;\n"},
		{in: "x=10", want: "int x = 10;\n"},
		{in: "x=y", want: "x=y;\n"},
		{in: "z=a+b", want: "auto z = a+b;\n"},
		{in: "z=z+1", want: "z=z+1;\n"},
	}

	for _, step := range steps {
		if got := ctx.Line(step.in); got.Text != step.want {
			t.Fatalf("Line(%q) = %q, want %q", step.in, got.Text, step.want)
		}
	}
}

func TestLineAppendsDeferredClosingBlocks(t *testing.T) {
	t.Parallel()

	opener := func(_ *Context, line string) Result {
		result := Continue(line + " {")
		result.ClosingBlocks = 1
		return result
	}
	passthrough := func(_ *Context, line string) Result {
		return Continue(line)
	}

	got := NewContext().run([]Stage{opener, passthrough}, "while x")
	if got.Text != "while x {\n}\n" {
		t.Fatalf("run().Text = %q", got.Text)
	}
	if got.ClosingBlocks != 1 {
		t.Fatalf("run().ClosingBlocks = %d, want 1", got.ClosingBlocks)
	}
}
