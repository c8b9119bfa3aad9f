package scanner

import (
	"github.com/nguyentantai21042004/transcript-triage/internal/config"
	"github.com/nguyentantai21042004/transcript-triage/internal/logger"
	"github.com/nguyentantai21042004/transcript-triage/pkg/textqc"
)

type implScanner struct {
	cfg      *config.Config
	analyzer *textqc.Analyzer
	logger   logger.Logger
}

// New creates a Scanner whose analyzer is tuned from the scan config.
func New(cfg *config.Config, log logger.Logger) Scanner {
	analyzer := textqc.New(
		textqc.WithPrefixWindow(cfg.Scan.PrefixWindow),
		textqc.WithSuffixWindow(cfg.Scan.SuffixWindow),
		textqc.WithHeuristicMaxChars(cfg.Scan.HeuristicMaxChars),
		textqc.WithTailLimits(cfg.Scan.TailMaxChars, cfg.Scan.TailMaxTokens),
		textqc.WithNGramWindow(cfg.Scan.NGramWindow),
		textqc.WithNearDuplicateThreshold(cfg.Scan.NearDuplicateSimilarity),
		textqc.WithExtraIntroPhrases(cfg.Scan.ExtraIntroPhrases...),
		textqc.WithExtraOutroPhrases(cfg.Scan.ExtraOutroPhrases...),
	)

	return &implScanner{
		cfg:      cfg,
		analyzer: analyzer,
		logger:   log,
	}
}
