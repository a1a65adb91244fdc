package rulesdsl

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/LalaSkye/policy-lint/internal/rules"
)

type dslPack struct {
	Rules []dslRule `yaml:"rules"`
}

type dslRule struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`  // regex, compiled case-insensitive
	Weight      int    `yaml:"weight"`   // positive severity contribution
	Severity    string `yaml:"severity"` // error|warning|info
}

// LoadAndRegister reads a YAML rule pack and registers its rules alongside
// the builtin table. Must run at startup, before the first lint call; the
// score normalization constant is recomputed per registered rule.
func LoadAndRegister(path string) (int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read rule pack: %w", err)
	}
	var pack dslPack
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return 0, fmt.Errorf("parse yaml: %w", err)
	}
	var n int
	for _, r := range pack.Rules {
		if r.ID == "" || r.Pattern == "" || r.Severity == "" {
			return n, fmt.Errorf("rule pack %s: missing required fields (id/pattern/severity)", path)
		}
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return n, fmt.Errorf("compile rule %q: %w", r.ID, err)
		}
		if err := rules.Register(rules.Rule{
			ID:          r.ID,
			Description: r.Description,
			Pattern:     re,
			Weight:      r.Weight,
			Severity:    r.Severity,
		}); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
