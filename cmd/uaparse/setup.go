package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/uaparser/pkg/clientip"
	"github.com/dmitrymomot/uaparser/pkg/logger"
	"github.com/dmitrymomot/uaparser/pkg/requestid"
	"github.com/dmitrymomot/uaparser/pkg/uaparser"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/rulefile"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService("uaparse"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			useragent.LoggerExtractor(),
		),
	), nil
}

// newClassifier resolves the configured bundles and rule file into a
// Classifier. The rule file comes after the named bundles.
func newClassifier(cfg Config, log *slog.Logger) (*useragent.Classifier, error) {
	sets, err := extensions.Resolve(cfg.Extensions...)
	if err != nil {
		return nil, err
	}

	if cfg.RulesFile != "" {
		f, err := rulefile.LoadFile(cfg.RulesFile)
		if err != nil {
			return nil, err
		}
		log.Debug("rule file loaded",
			logger.RuleFile(cfg.RulesFile),
			slog.String("name", f.Name),
			logger.Rules(countRules(f.Rules)),
		)
		sets = append(sets, f.Rules)
	}

	opts := []useragent.Option{useragent.WithCacheSize(cfg.CacheSize)}
	if cfg.Layered {
		opts = append(opts, useragent.WithLayered(sets...))
	} else {
		opts = append(opts, useragent.WithRuleSets(sets...))
	}

	c, err := useragent.NewClassifier(opts...)
	if err != nil {
		return nil, err
	}
	log.Debug("classifier ready",
		logger.Bundles(cfg.Extensions...),
		slog.Bool("layered", cfg.Layered),
		logger.Rules(countRules(c.Rules())),
	)
	return c, nil
}

func countRules(s uaparser.RuleSet) int {
	n := 0
	for _, table := range s {
		n += len(table)
	}
	return n
}
