package config

import "fmt"

// Config is the full runtime configuration, loadable from YAML and
// overridable by CLI flags.
type Config struct {
	Paths   PathsConfig   `yaml:"paths"`
	Scan    ScanConfig    `yaml:"scan"`
	Logging LoggingConfig `yaml:"logging"`
}

type PathsConfig struct {
	Folder string `yaml:"folder"`
	Log    string `yaml:"log"`
}

type ScanConfig struct {
	// Threshold is the confidence cutoff for the "over" list; nil disables it.
	Threshold *float64 `yaml:"threshold"`
	// Apply rewrites files in place with chatter removed.
	Apply bool `yaml:"apply"`
	// Watch keeps the process alive and rescans on new transcripts.
	Watch bool `yaml:"watch"`

	PrefixWindow             int     `yaml:"prefix_window"`
	SuffixWindow             int     `yaml:"suffix_window"`
	HeuristicMaxChars        int     `yaml:"heuristic_max_chars"`
	TailMaxChars             int     `yaml:"tail_max_chars"`
	TailMaxTokens            int     `yaml:"tail_max_tokens"`
	NGramWindow              int     `yaml:"ngram_window"`
	RepetitionFlagThreshold  float64 `yaml:"repetition_flag_threshold"`
	RepetitionIssueThreshold float64 `yaml:"repetition_issue_threshold"`
	NearDuplicateSimilarity  float64 `yaml:"near_duplicate_similarity"`

	ExtraIntroPhrases []string `yaml:"extra_intro_phrases"`
	ExtraOutroPhrases []string `yaml:"extra_outro_phrases"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with every tunable at its built-in value. The
// folder is left empty; it must come from the config file or the CLI.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Scan.PrefixWindow == 0 {
		c.Scan.PrefixWindow = 200
	}
	if c.Scan.SuffixWindow == 0 {
		c.Scan.SuffixWindow = 200
	}
	if c.Scan.HeuristicMaxChars == 0 {
		c.Scan.HeuristicMaxChars = 240
	}
	if c.Scan.TailMaxChars == 0 {
		c.Scan.TailMaxChars = 120
	}
	if c.Scan.TailMaxTokens == 0 {
		c.Scan.TailMaxTokens = 16
	}
	if c.Scan.NGramWindow == 0 {
		c.Scan.NGramWindow = 8
	}
	if c.Scan.RepetitionFlagThreshold == 0 {
		c.Scan.RepetitionFlagThreshold = 0.2
	}
	if c.Scan.RepetitionIssueThreshold == 0 {
		c.Scan.RepetitionIssueThreshold = 0.15
	}
	if c.Scan.NearDuplicateSimilarity == 0 {
		c.Scan.NearDuplicateSimilarity = 0.92
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func (c *Config) Validate() error {
	if c.Paths.Folder == "" {
		return fmt.Errorf("paths.folder is required")
	}
	if c.Scan.Threshold != nil && (*c.Scan.Threshold < 0 || *c.Scan.Threshold > 100) {
		return fmt.Errorf("scan.threshold must be between 0 and 100")
	}
	if c.Scan.RepetitionFlagThreshold < 0 || c.Scan.RepetitionFlagThreshold > 1 {
		return fmt.Errorf("scan.repetition_flag_threshold must be between 0 and 1")
	}
	if c.Scan.RepetitionIssueThreshold < 0 || c.Scan.RepetitionIssueThreshold > 1 {
		return fmt.Errorf("scan.repetition_issue_threshold must be between 0 and 1")
	}
	if c.Scan.NearDuplicateSimilarity < 0 || c.Scan.NearDuplicateSimilarity > 1 {
		return fmt.Errorf("scan.near_duplicate_similarity must be between 0 and 1")
	}

	c.applyDefaults()

	return nil
}
