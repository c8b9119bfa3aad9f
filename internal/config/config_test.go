package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	badThreshold := 150.0

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{Folder: "data/transcripts"},
			},
			wantErr: false,
		},
		{
			name:    "missing folder",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "threshold out of range",
			config: Config{
				Paths: PathsConfig{Folder: "data/transcripts"},
				Scan:  ScanConfig{Threshold: &badThreshold},
			},
			wantErr: true,
		},
		{
			name: "flag threshold out of range",
			config: Config{
				Paths: PathsConfig{Folder: "data/transcripts"},
				Scan:  ScanConfig{RepetitionFlagThreshold: 1.5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Folder: "data/transcripts"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Scan.PrefixWindow != 200 {
		t.Errorf("PrefixWindow = %d, want 200", cfg.Scan.PrefixWindow)
	}
	if cfg.Scan.HeuristicMaxChars != 240 {
		t.Errorf("HeuristicMaxChars = %d, want 240", cfg.Scan.HeuristicMaxChars)
	}
	if cfg.Scan.TailMaxChars != 120 || cfg.Scan.TailMaxTokens != 16 {
		t.Errorf("tail limits = %d/%d, want 120/16", cfg.Scan.TailMaxChars, cfg.Scan.TailMaxTokens)
	}
	if cfg.Scan.NGramWindow != 8 {
		t.Errorf("NGramWindow = %d, want 8", cfg.Scan.NGramWindow)
	}
	if cfg.Scan.RepetitionFlagThreshold != 0.2 {
		t.Errorf("RepetitionFlagThreshold = %v, want 0.2", cfg.Scan.RepetitionFlagThreshold)
	}
	if cfg.Scan.RepetitionIssueThreshold != 0.15 {
		t.Errorf("RepetitionIssueThreshold = %v, want 0.15", cfg.Scan.RepetitionIssueThreshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
paths:
  folder: "data/transcripts"
  log: "data/removals.log"

scan:
  threshold: 85
  apply: true
  extra_outro_phrases:
    - "hope that helps"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Folder != "data/transcripts" {
		t.Errorf("Folder = %v, want %v", cfg.Paths.Folder, "data/transcripts")
	}
	if cfg.Scan.Threshold == nil || *cfg.Scan.Threshold != 85 {
		t.Errorf("Threshold = %v, want 85", cfg.Scan.Threshold)
	}
	if !cfg.Scan.Apply {
		t.Error("Apply = false, want true")
	}
	if len(cfg.Scan.ExtraOutroPhrases) != 1 || cfg.Scan.ExtraOutroPhrases[0] != "hope that helps" {
		t.Errorf("ExtraOutroPhrases = %v", cfg.Scan.ExtraOutroPhrases)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
