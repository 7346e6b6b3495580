package lower

import "strings"

var stages = []Stage{
	Operators,
	Assignments,
	Builtins,
}

// Line runs a normalized line through every stage and terminates it.
func (c *Context) Line(line string) Result {
	return c.run(stages, line)
}

func (c *Context) run(stages []Stage, line string) Result {
	result := Continue(line)
	kind := KindPassthrough

	for _, stage := range stages {
		next := stage(c, result.Text)
		next.ClosingBlocks += result.ClosingBlocks
		if next.Kind != "" && (kind == KindPassthrough || next.Kind != KindPrint) {
			kind = next.Kind
		}
		result = next
		if result.Stopped() {
			break
		}
	}

	result = Terminate(result)
	result.Kind = kind
	if result.ClosingBlocks > 0 {
		result.Text += strings.Repeat("\n}\n", result.ClosingBlocks)
	}

	return result
}
