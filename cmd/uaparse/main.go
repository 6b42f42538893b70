// Command uaparse classifies User-Agent strings from the command line or
// over HTTP.
//
//	uaparse "Mozilla/5.0 (iPhone; ...)"      # one JSON line per argument
//	tail -f access.log | uaparse -e bots      # one JSON line per input line
//	uaparse serve --addr :8080                # HTTP API
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uaparser/pkg/httpserver"
	"github.com/dmitrymomot/uaparser/pkg/logger"
	"github.com/dmitrymomot/uaparser/pkg/metrics"
	"github.com/dmitrymomot/uaparser/pkg/ratelimiter"
	"github.com/dmitrymomot/uaparser/pkg/rulewatch"
	"github.com/dmitrymomot/uaparser/pkg/uaparser/extensions"
	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

var version = "dev"

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "uaparse:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "uaparse [user-agent...]",
		Short: "Classify User-Agent strings",
		Long: `uaparse identifies the browser, engine, operating system, device and CPU
behind User-Agent strings using ordered regex rule tables.

With arguments every argument is classified; otherwise every non-blank line
of standard input is. Results are written as JSON lines.`,
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cfg, errOut)
			if err != nil {
				return err
			}
			c, err := newClassifier(cfg, log)
			if err != nil {
				return err
			}
			return classifyStream(c, args, in, out)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	bindFlags(root, &cfg)

	root.AddCommand(newServeCmd(&cfg, errOut), newBundlesCmd(out))
	return root
}

func newServeCmd(cfg *Config, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(*cfg, errOut)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)
			return serve(cmd.Context(), *cfg, log)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.HTTP.Addr, "addr", cfg.HTTP.Addr, "listen address")
	f.BoolVar(&cfg.WatchRules, "watch", cfg.WatchRules, "reload the rule file when it changes")
	f.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "expose Prometheus metrics on /metrics")
	f.IntVar(&cfg.RateLimit.Capacity, "rate-burst", cfg.RateLimit.Capacity, "per-client burst for /v1 (0 disables rate limiting)")
	return cmd
}

func serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	c, err := newClassifier(cfg, log)
	if err != nil {
		log.Error("classifier setup failed", logger.Error(err))
		return err
	}
	current := useragent.NewSwappable(c)

	deps := routerDeps{Classifier: current, Config: cfg, Log: log}
	if cfg.Metrics {
		deps.Metrics = metrics.NewCollector()
	}
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore(5 * time.Minute)
		defer store.Close()
		if deps.Limiter, err = ratelimiter.NewBucket(store, cfg.RateLimit); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.WatchRules && cfg.RulesFile != "" {
		w, err := rulewatch.New(cfg.RulesFile, rulewatch.WithLogger(log))
		if err != nil {
			return err
		}
		go func() {
			if err := w.Watch(ctx, reloader(cfg, log, current, deps.Metrics)); err != nil {
				log.Error("rule watcher stopped", logger.Error(err))
			}
		}()
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	log.Info("starting",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("version", version),
		logger.Bundles(cfg.Extensions...),
		slog.Bool("metrics", cfg.Metrics),
		slog.Bool("rate_limit", cfg.RateLimit.Enabled()),
	)
	return srv.Run(ctx, newRouter(deps))
}

// reloader rebuilds the classifier from cfg. On failure the current one
// stays in service.
func reloader(cfg Config, log *slog.Logger, current *useragent.Swappable, m *metrics.Collector) func() error {
	return func() error {
		c, err := newClassifier(cfg, log)
		if m != nil {
			m.ObserveReload(err)
		}
		if err != nil {
			return err
		}
		current.Swap(c)
		return nil
	}
}

func newBundlesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "List the available extension bundles",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			for _, name := range extensions.Names() {
				fmt.Fprintln(out, name)
			}
		},
	}
}
