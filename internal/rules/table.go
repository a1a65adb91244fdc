package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/LalaSkye/policy-lint/internal/ir"
)

// Rule is one lexical lint rule. Patterns match case-insensitively on word
// boundaries against the normalized, stripped statement.
type Rule struct {
	ID          string
	Description string
	Pattern     *regexp.Regexp
	Weight      int
	Severity    string
}

// EmptyRuleID marks the designated empty-statement rule. It short-circuits
// evaluation and is excluded from the weight sum.
const EmptyRuleID = "WARN_EMPTY"

// builtin is the fixed rule catalog. Order is not significant: warnings are
// re-sorted by rule id before assembly.
var builtin = []Rule{
	{
		ID:          EmptyRuleID,
		Description: "Statement is empty or whitespace-only.",
		Pattern:     regexp.MustCompile(`.\A`), // cannot match; the empty condition is checked up front
		Weight:      10,
		Severity:    ir.SeverityError,
	},
	{
		ID: "WARN_INTENT_LANGUAGE",
		Description: "Anthropomorphic/intent language (understands, wants, decides, knows, believes, intends). " +
			"Describe behaviour, not mental states.",
		Pattern:  regexp.MustCompile(`(?i)\b(understands?|wants?|decides?|knows?|believes?|intends?|intentions?)\b`),
		Weight:   3,
		Severity: ir.SeverityWarning,
	},
	{
		ID: "WARN_MARKETING_LANGUAGE",
		Description: "Unquantified comparative claim (significantly, substantially, industry-leading, best-in-class). " +
			"Add a baseline or metric.",
		Pattern: regexp.MustCompile(`(?i)\b(significantly|substantially|industry[- ]leading|best[- ]in[- ]class` +
			`|state[- ]of[- ]the[- ]art|cutting[- ]edge|world[- ]class)\b`),
		Weight:   3,
		Severity: ir.SeverityWarning,
	},
	{
		ID:          "WARN_NON_OPERATIONAL",
		Description: "Operational verb (ensure, prevent, avoid, mitigate, promote) without defined scope/object.",
		Pattern:     regexp.MustCompile(`(?i)\b(ensures?|prevents?|avoids?|mitigates?|promotes?)\b`),
		Weight:      2,
		Severity:    ir.SeverityWarning,
	},
	{
		ID: "WARN_SCOPE_MISSING",
		Description: "Broad/unmodified entity reference (users, data, harm, system, model, people) " +
			"without scope qualifiers.",
		Pattern:  regexp.MustCompile(`(?i)\b(users?|data|harms?|systems?|models?|people|individuals?|society)\b`),
		Weight:   1,
		Severity: ir.SeverityInfo,
	},
	{
		ID: "WARN_UNIVERSAL",
		Description: "Universal/absolute claim (always, never, guaranteed, cannot fail, impossible, 100%, zero risk). " +
			"Absolute claims are rarely falsifiable.",
		Pattern: regexp.MustCompile(`(?i)\b(always|never|guaranteed|cannot\s+fail|impossible|100\s*%` +
			`|zero\s+risk|infallible|foolproof)\b`),
		Weight:   5,
		Severity: ir.SeverityError,
	},
	{
		ID: "WARN_VAGUE_SAFETY",
		Description: "Vague safety/quality adjective (safe, secure, robust, ethical, responsible, trustworthy, " +
			"fair, aligned) without an associated metric or condition.",
		Pattern:  regexp.MustCompile(`(?i)\b(safe|secure|robust|ethical|responsible|trustworthy|fair|aligned|harmless)\b`),
		Weight:   3,
		Severity: ir.SeverityWarning,
	},
}

var (
	table     []Rule
	ruleIndex = map[string]int{} // rule ID -> index in table
	wmax      int
)

func init() {
	for _, r := range builtin {
		if err := Register(r); err != nil {
			panic(err)
		}
	}
}

// Register adds a rule to the table. The table must be fully assembled at
// process start, before the first Lint call; Register is not safe for use
// concurrently with Lint.
func Register(r Rule) error {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		return fmt.Errorf("register rule: empty id")
	}
	if _, dup := ruleIndex[id]; dup {
		return fmt.Errorf("register rule %q: duplicate id", id)
	}
	if r.Pattern == nil {
		return fmt.Errorf("register rule %q: nil pattern", id)
	}
	if r.Weight <= 0 {
		return fmt.Errorf("register rule %q: weight must be positive", id)
	}
	switch r.Severity {
	case ir.SeverityError, ir.SeverityWarning, ir.SeverityInfo:
	default:
		return fmt.Errorf("register rule %q: unknown severity %q", id, r.Severity)
	}
	r.ID = id
	table = append(table, r)
	ruleIndex[id] = len(table) - 1
	wmax = computeMaxWeight()
	return nil
}

// List returns the rule table sorted by id.
func List() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a rule by id if registered.
func Get(id string) (Rule, bool) {
	idx, ok := ruleIndex[strings.TrimSpace(id)]
	if !ok {
		return Rule{}, false
	}
	return table[idx], true
}

// MaxWeight is the score normalization constant: twice the weight sum of all
// substantive rules. The doubling keeps the score a gradient rather than a
// binary signal when many rules fire at once.
func MaxWeight() int { return wmax }

func computeMaxWeight() int {
	sum := 0
	for _, r := range table {
		if r.ID == EmptyRuleID {
			continue
		}
		sum += r.Weight
	}
	return sum * 2
}
