package output

// CheckSummary counts the findings of one check run.
type CheckSummary struct {
	Files        int `json:"files"`
	Declarations int `json:"declarations"`
	Annotated    int `json:"annotated"`
	Diagnostics  int `json:"diagnostics"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Info         int `json:"info"`
	Hints        int `json:"hints"`
	Failed       int `json:"failed"` // Declarations that hit an internal error
}

// CheckDiagnostic is the JSON form of one diagnostic.
type CheckDiagnostic struct {
	RuleID   string         `json:"rule_id"`
	Severity string         `json:"severity"`
	Message  string         `json:"message"`
	Args     []string       `json:"args,omitempty"`
	File     string         `json:"file,omitempty"`
	Span     string         `json:"span,omitempty"`
	Node     string         `json:"node"`
	Fixable  bool           `json:"fixable"`
	DocURL   string         `json:"doc_url,omitempty"`
	Related  []CheckRelated `json:"related,omitempty"`
}

// CheckRelated is a further location that explains a diagnostic.
type CheckRelated struct {
	File    string `json:"file,omitempty"`
	Span    string `json:"span,omitempty"`
	Message string `json:"message"`
}

// CheckType groups the diagnostics of one declaration.
type CheckType struct {
	Name        string            `json:"name"`
	File        string            `json:"file,omitempty"`
	Category    string            `json:"category"`
	Diagnostics []CheckDiagnostic `json:"diagnostics"`
	Blocked     []string          `json:"blocked,omitempty"`
	Skipped     map[string]string `json:"skipped,omitempty"` // Fragment kind -> reason
	Error       string            `json:"error,omitempty"`
}

// CheckOutput is the JSON output of the check command.
type CheckOutput struct {
	RunID   string       `json:"run_id"`
	Summary CheckSummary `json:"summary"`
	Types   []CheckType  `json:"types"`
	Errors  []string     `json:"errors,omitempty"` // Files that failed to load
}

// FixType reports the rewrites applied to one declaration.
type FixType struct {
	Name      string   `json:"name"`
	File      string   `json:"file,omitempty"`
	Applied   []string `json:"applied"` // Rule IDs in application order
	Passes    int      `json:"passes"`
	Remaining int      `json:"remaining"`
	Error     string   `json:"error,omitempty"`
}

// FixOutput is the JSON output of the fix command.
type FixOutput struct {
	RunID   string    `json:"run_id"`
	DryRun  bool      `json:"dry_run"`
	Types   []FixType `json:"types"`
	Written []string  `json:"written,omitempty"`
}

// GenerateFragment is the JSON form of one generated fragment.
type GenerateFragment struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// GenerateType is the JSON output of generate for one declaration.
type GenerateType struct {
	Name      string             `json:"name"`
	Category  string             `json:"category"`
	Fragments []GenerateFragment `json:"fragments"`
	Skipped   map[string]string  `json:"skipped,omitempty"`
	Blocked   []string           `json:"blocked,omitempty"`
	Error     string             `json:"error,omitempty"`
}
