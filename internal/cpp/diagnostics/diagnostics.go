package diagnostics

// Code classifies translation limitations. Codes never change output text.
type Code string

const (
	CodeComparisonNotAssignment Code = "comparison_not_assignment"
	CodeComparisonAsAssignment  Code = "comparison_read_as_assignment"
	CodePrintCallMalformed      Code = "print_call_malformed"
	CodeOperandNotSubstituted   Code = "operand_not_substituted"
	CodeBlockPassthrough        Code = "block_statement_passthrough"
	CodeOutputExists            Code = "output_exists"
)

// Stage identifies the translation pipeline stage where a diagnostic was raised.
type Stage string

const (
	StageNormalize Stage = "normalize"
	StageLower     Stage = "lower"
	StageFiles     Stage = "files"
)

// Severity indicates diagnostic impact.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Definition is canonical metadata for one diagnostic code.
type Definition struct {
	Code            Code
	DefaultStage    Stage
	DefaultSeverity Severity
}

var definitions = map[Code]Definition{
	CodeComparisonNotAssignment: {
		Code:            CodeComparisonNotAssignment,
		DefaultStage:    StageLower,
		DefaultSeverity: SeverityInfo,
	},
	CodeComparisonAsAssignment: {
		Code:            CodeComparisonAsAssignment,
		DefaultStage:    StageLower,
		DefaultSeverity: SeverityWarning,
	},
	CodePrintCallMalformed: {
		Code:            CodePrintCallMalformed,
		DefaultStage:    StageLower,
		DefaultSeverity: SeverityWarning,
	},
	CodeOperandNotSubstituted: {
		Code:            CodeOperandNotSubstituted,
		DefaultStage:    StageNormalize,
		DefaultSeverity: SeverityInfo,
	},
	CodeBlockPassthrough: {
		Code:            CodeBlockPassthrough,
		DefaultStage:    StageLower,
		DefaultSeverity: SeverityWarning,
	},
	CodeOutputExists: {
		Code:            CodeOutputExists,
		DefaultStage:    StageFiles,
		DefaultSeverity: SeverityWarning,
	},
}

// DefinitionFor resolves canonical metadata for a diagnostic code.
func DefinitionFor(code Code) Definition {
	if definition, ok := definitions[code]; ok {
		return definition
	}

	return Definition{
		Code:            code,
		DefaultStage:    StageLower,
		DefaultSeverity: SeverityWarning,
	}
}

// Span identifies a source range.
type Span struct {
	Line   int `json:"line,omitempty" yaml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// Issue is a single translation diagnostic.
type Issue struct {
	Code     Code     `json:"code" yaml:"code"`
	Stage    Stage    `json:"stage,omitempty" yaml:"stage,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Severity Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message  string   `json:"message" yaml:"message"`
	Span     *Span    `json:"span,omitempty" yaml:"span,omitempty"`
}

// New builds an issue using the code's default stage and severity.
func New(code Code, line int, message string) Issue {
	definition := DefinitionFor(code)
	issue := Issue{
		Code:     code,
		Stage:    definition.DefaultStage,
		Severity: definition.DefaultSeverity,
		Message:  message,
	}
	if line > 0 {
		issue.Span = &Span{Line: line}
	}

	return issue
}
