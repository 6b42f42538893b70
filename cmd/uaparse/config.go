package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaparser/pkg/config"
	"github.com/dmitrymomot/uaparser/pkg/httpserver"
	"github.com/dmitrymomot/uaparser/pkg/ratelimiter"
)

// Config is read from the environment (and an optional .env file); command
// line flags override individual values.
type Config struct {
	Extensions []string `env:"UAPARSE_EXTENSIONS" envSeparator:","`
	Layered    bool     `env:"UAPARSE_LAYERED" envDefault:"true"`
	RulesFile  string   `env:"UAPARSE_RULES_FILE"`
	CacheSize  int      `env:"UAPARSE_CACHE_SIZE" envDefault:"1024"`
	LogLevel   string   `env:"UAPARSE_LOG_LEVEL" envDefault:"info"`
	LogFormat  string   `env:"UAPARSE_LOG_FORMAT" envDefault:"text"`

	// serve only
	WatchRules bool `env:"UAPARSE_WATCH_RULES" envDefault:"false"`
	Metrics    bool `env:"UAPARSE_METRICS" envDefault:"true"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlags registers the persistent flags of the root command with the
// environment values as defaults.
func bindFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.PersistentFlags()
	f.StringSliceVarP(&cfg.Extensions, "ext", "e", cfg.Extensions, "extension bundles to enable (bots, clis, crawlers, emails, fetchers, inapps, libraries, vehicles)")
	f.BoolVar(&cfg.Layered, "layered", cfg.Layered, "try extension rules before the defaults instead of replacing them")
	f.StringVarP(&cfg.RulesFile, "rules", "r", cfg.RulesFile, "YAML rule file with extra rules")
	f.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "number of classifications to cache (0 disables)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
}
