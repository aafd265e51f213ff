package bemgen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bemlint"
	Text        string   `json:"Text"`        // "element \"iconn\" is not defined in block \"alert\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	Class       string   `json:"Class"`       // offending class token
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based, start of the class token
}

// LinterName is reported in Issue.FromLinter.
const LinterName = "bemlint"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue messages for checks that have no generator error to report.
const (
	IssueUnknownBlock    = "block %q is not declared in the schema"
	IssueMissingBase     = "modifier class %q is used without its base class %q"
	IssueMalformedClass  = "malformed BEM class %q"
	IssueDuplicatedClass = "class %q is repeated in the same attribute"
)
