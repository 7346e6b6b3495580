package lower

// Kind records how a line was rewritten. It is report metadata only.
type Kind string

const (
	KindComment     Kind = "comment"
	KindInt         Kind = "int"
	KindDouble      Kind = "double"
	KindString      Kind = "string"
	KindAuto        Kind = "auto"
	KindAssign      Kind = "assign"
	KindPrint       Kind = "print"
	KindPassthrough Kind = "passthrough"
)

// Result is the output of one stage: either Continue, or Stop when the
// remaining stages must be skipped.
type Result struct {
	Text string
	Kind Kind

	// ClosingBlocks counts closing braces deferred until after the line.
	ClosingBlocks int

	stop bool
}

// Continue passes text on to the next stage.
func Continue(text string) Result {
	return Result{Text: text}
}

// Stop ends the pipeline for the line with text as its final output.
func Stop(text string) Result {
	return Result{Text: text, stop: true}
}

// Stopped reports whether the remaining stages are skipped.
func (r Result) Stopped() bool {
	return r.stop
}

func (r Result) as(kind Kind) Result {
	r.Kind = kind
	return r
}
