package shared

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		DSN string `yaml:"dsn"` // "./policy-lint.db"
	} `yaml:"database"`

	Analysis struct {
		RulePacks   []string `yaml:"rule_packs"`   // extra YAML rule packs, loaded at startup
		MinSeverity string   `yaml:"min_severity"` // "info"|"warning"|"error" — reporting floor
	} `yaml:"analysis"`

	Reporting struct {
		OutDir string `yaml:"out_dir"` // "./reports"
	} `yaml:"reporting"`

	Server struct {
		Addr           string   `yaml:"addr"`          // ":8787"
		SessionHours   int      `yaml:"session_hours"` // 12
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.DSN = "./policy-lint.db"
	c.Analysis.MinSeverity = "info"
	c.Reporting.OutDir = "./reports"
	c.Server.Addr = ":8787"
	c.Server.SessionHours = 12
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("POLICY_LINT_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("POLICY_LINT_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("POLICY_LINT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("POLICY_LINT_MIN_SEVERITY"); v != "" {
		c.Analysis.MinSeverity = v
	}
	if v := os.Getenv("POLICY_LINT_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("POLICY_LINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return c, nil
}
