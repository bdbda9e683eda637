package main

import (
	"context"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/okian/marks/internal/adapters/http/api"
	app "github.com/okian/marks/internal/app"
	"github.com/okian/marks/internal/config"
	"github.com/okian/marks/pkg/logger"
	"github.com/okian/marks/pkg/metrics"
)

// Flag names.
const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogJSON     = "log-json"
	flagMetricsAddr = "metrics-addr"
)

type rootOptions struct {
	configFile  string
	logLevel    string
	logJSON     bool
	metricsAddr string
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "marks [OPTIONS]",
		Short:         "Interactive calculator for the mean, median, mode and skewness of student marks.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.Flags(), opts, in, out, errOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, flagConfig, "", "YAML configuration file (overrides "+config.EnvConfigFile+")")
	flags.StringVar(&opts.logLevel, flagLogLevel, config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.logJSON, flagLogJSON, false, "Write log records as JSON")
	flags.StringVar(&opts.metricsAddr, flagMetricsAddr, "", "Serve /metrics and /healthz on this address")

	return cmd
}

// run loads configuration, wires the ambient stack and drives one session.
func run(ctx context.Context, flags *pflag.FlagSet, opts rootOptions, in io.Reader, out, errOut io.Writer) error {
	// Load configuration (defaults -> optional file -> env -> flags)
	loadOpts := []config.LoadOption{config.WithFile(opts.configFile)}
	if flags.Changed(flagLogLevel) {
		loadOpts = append(loadOpts, config.WithOverride("log_level", opts.logLevel))
	}
	if flags.Changed(flagLogJSON) {
		loadOpts = append(loadOpts, config.WithOverride("log_json", opts.logJSON))
	}
	if flags.Changed(flagMetricsAddr) {
		loadOpts = append(loadOpts, config.WithOverride("metrics_addr", opts.metricsAddr))
	}
	cfg, err := config.Load(ctx, loadOpts...)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.WithOutput(errOut), logger.WithJSON(cfg.LogJSON)); err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	log := logger.Get()

	// Apply configured log level (fallback to warn on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to warn", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString(config.DefaultLogLevel)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Fresh registry per run so repeated runs in one process do not collide.
	registry := prometheus.NewRegistry()
	mgr := metrics.NewManager(
		metrics.WithNamespace(cfg.MetricsNamespace),
		metrics.WithMetricsEnabled(cfg.MetricsEnabled),
		metrics.WithPrometheusRegistry(registry),
	)

	serverDone := make(chan struct{})
	if cfg.MetricsAddr != "" {
		srv := api.NewServer(registry, log)
		go func() {
			defer close(serverDone)
			if err := srv.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
	} else {
		close(serverDone)
	}

	session := app.New(in, out,
		app.WithLogger(log),
		app.WithMetrics(mgr),
		app.WithTerminator(cfg.Terminator),
		app.WithPrompt(cfg.Prompt),
		app.WithMinFreshMarks(cfg.MinFreshMarks),
	)
	err = session.Run(ctx)

	cancel()
	<-serverDone
	return err
}

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Stderr.WriteString("marks: " + err.Error() + "\n")
		os.Exit(1)
	}
}
