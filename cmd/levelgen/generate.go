package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/levelgen/internal/config"
	"github.com/cory-johannsen/levelgen/internal/game/levelgen"
	"github.com/cory-johannsen/levelgen/internal/game/rng"
	"github.com/cory-johannsen/levelgen/internal/observability"
)

type generateOptions struct {
	seed   uint64
	trace  bool
	output string
}

func generateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a level and write its layout as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadViper(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				v.Set("generator.seed", opts.seed)
			}
			if opts.trace {
				v.Set("logging.level", "debug")
			}
			cfg, err := config.LoadFromViper(v)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if opts.output == "" || opts.output == "-" {
				return runGenerate(ctx, cfg, opts.trace, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}
			f, err := os.Create(opts.output)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			return generateInto(ctx, cfg, opts.trace, f, cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible level (default: random)")
	flags.Int("rooms", 0, "number of rooms, spawn room included")
	flags.Int("terminals", 0, "number of terminal rooms")
	flags.String("catalogue", "", "path to a room template catalogue YAML file")
	flags.BoolVar(&opts.trace, "trace", false, "log every random draw at debug level")
	flags.StringVarP(&opts.output, "output", "o", "-", "layout output file, - for stdout")
	return cmd
}

// loadViper builds the viper instance for cmd: defaults, the --config file,
// environment overrides and any flags bound to config keys.
func loadViper(cmd *cobra.Command) (*viper.Viper, error) {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	for key, flag := range map[string]string{
		"generator.num_rooms":          "rooms",
		"generator.num_terminal_rooms": "terminals",
		"catalogue.path":               "catalogue",
	} {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %q: %w", flag, err)
			}
		}
	}
	return v, nil
}

// generateInto runs runGenerate with w as the layout output and closes w.
//
// Postcondition: w is closed; a failed close is returned when generation
// itself succeeded.
func generateInto(ctx context.Context, cfg config.Config, trace bool, w io.WriteCloser, summary io.Writer) error {
	if err := runGenerate(ctx, cfg, trace, w, summary); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// runGenerate generates one level from cfg one step at a time, writes its
// layout to out and a one-line summary to summary.
//
// Precondition: cfg must be valid.
// Postcondition: the written layout records the seed the level was built from.
func runGenerate(ctx context.Context, cfg config.Config, trace bool, out, summary io.Writer) error {
	start := time.Now()

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	catalogue, err := cfg.Catalogue.Load()
	if err != nil {
		return fmt.Errorf("loading catalogue: %w", err)
	}

	var seeded *rng.Seeded
	if cfg.Generator.Seed != nil {
		seeded = rng.NewSeeded(*cfg.Generator.Seed)
	} else {
		seeded = rng.NewEntropy()
	}
	var src rng.Source = seeded
	if trace {
		src = rng.NewLoggedSource(seeded, logger)
	}

	gen := levelgen.NewGenerator(logger)
	if err := gen.Init(cfg.Generator.Build(), catalogue, nil, src); err != nil {
		return err
	}
	defer gen.Dispose()

	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generating level: %w", err)
		}
		more := gen.Update()
		steps++
		if trace {
			logger.Debug("generator step", zap.Int("n", steps), zap.Stringer("state", gen.State()))
		}
		if !more {
			break
		}
	}

	layout := gen.Snapshot()
	seed := seeded.Seed()
	layout.Seed = &seed

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}

	fmt.Fprintf(summary, "level %s: seed=%d rooms=%d edges=%d hallways=%d steps=%d [%s]\n",
		layout.Session, seed, len(layout.Rooms), len(layout.Edges), len(layout.Hallways), steps,
		time.Since(start).Round(time.Millisecond))

	logger.Info("level generated",
		zap.String("session", layout.Session),
		zap.Uint64("seed", seed),
		zap.Int("steps", steps),
		zap.Int("rooms", len(layout.Rooms)),
		zap.Int("edges", len(layout.Edges)),
		zap.Int("hallways", len(layout.Hallways)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}
