package ir

import "time"

const Version = "1.0"

// Severity levels a rule can carry, lowest to highest.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Posture verdicts on how falsifiable/operational a statement is.
const (
	PostureHardInvariant  = "HARD_INVARIANT"
	PostureCostCurve      = "COST_CURVE"
	PostureAmbiguous      = "AMBIGUOUS"
	PostureNonFalsifiable = "NON_FALSIFIABLE"
)

// Run is one batch of linted statements.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source,omitempty"`
	IRVersion string    `json:"ir_version,omitempty"`

	Context Context  `json:"context"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

type Context struct {
	MinSeverity string   `json:"min_severity,omitempty"`
	RulePacks   []string `json:"rule_packs,omitempty"`
}

// Result is the outcome of linting a single statement. Constructed once,
// never mutated afterwards.
type Result struct {
	Statement string    `json:"statement"`
	Warnings  []Warning `json:"warnings"`
	Score     float64   `json:"score"`
	Posture   string    `json:"posture"`
	Flags     []string  `json:"flags"`
}

// Warning is one fired rule. A rule produces at most one Warning per
// statement; repeated matches are folded into MatchedTokens.
type Warning struct {
	RuleID        string   `json:"rule_id"`
	Severity      string   `json:"severity"`
	Description   string   `json:"description"`
	MatchedTokens []string `json:"matched_tokens"`
}

// Summary aggregates a run for reports and listings.
type Summary struct {
	Statements   int            `json:"statements"`
	WarningCount int            `json:"warning_count"`
	BySeverity   SeverityCounts `json:"by_severity"`
	ByPosture    PostureCounts  `json:"by_posture"`
	MeanScore    float64        `json:"mean_score"`
	MinScore     float64        `json:"min_score"`
	MaxScore     float64        `json:"max_score"`
}

type SeverityCounts struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}

type PostureCounts struct {
	HardInvariant  int `json:"hard_invariant"`
	CostCurve      int `json:"cost_curve"`
	Ambiguous      int `json:"ambiguous"`
	NonFalsifiable int `json:"non_falsifiable"`
}

// SeverityRank orders severities for threshold filtering. Unknown values
// rank as info.
func SeverityRank(sev string) int {
	switch sev {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	default:
		return 1
	}
}
