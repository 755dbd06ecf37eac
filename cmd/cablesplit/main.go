package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/cablesplit/internal/cliconfig"
	"github.com/bft-labs/cablesplit/internal/render"
	"github.com/bft-labs/cablesplit/internal/splitter"
	"github.com/bft-labs/cablesplit/pkg/log"
)

const longHelp = `Split a cable into the longest equal whole-unit pieces possible.

The cable is cut --times times. Any leftover is cut into more pieces of the
same length, and whatever still remains becomes one final shorter piece.
Pieces are named <name>-<index> with the index zero-padded so every name has
the same width.

Inputs come from a TOML job file, CABLESPLIT_* environment variables and
flags, in increasing order of precedence.`

var exampleUsage = strings.TrimSpace(`
  cablesplit --name coconut --length 10 --times 2
  cablesplit --name coconut --length 11 --times 10 --format json
  cablesplit --config ./job.toml --plan
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "cablesplit",
		Short:         "Split a cable into equal whole-unit pieces",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("config file %s not found", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			cable, times, format, err := cfg.Validate()
			if err != nil {
				return err
			}

			logger := cliconfig.Logger(cfg.Verbose)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			s := splitter.New(splitter.WithLogger(log.NewZerologAdapterWithLogger(logger)))
			out := cmd.OutOrStdout()

			if cfg.Plan {
				plan, err := s.Plan(&cable, times)
				if err != nil {
					return err
				}
				return render.Plan(out, format, plan)
			}

			pieces, err := s.Split(&cable, times)
			if err != nil {
				return err
			}
			return render.Pieces(out, format, pieces)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to TOML job file (default: $HOME/.cablesplit/job.toml)")
	root.Flags().StringVar(&cfg.Name, "name", cfg.Name, "cable name used as the piece name prefix")
	root.Flags().IntVar(&cfg.Length, "length", cfg.Length, "cable length in whole units")
	// Parsed by splitter.ParseTimes so that fractional values are reported as non-integer.
	root.Flags().StringVar(&cfg.Times, "times", cfg.Times, "number of times to split the cable (1-64)")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json, toml or yaml")
	root.Flags().BoolVar(&cfg.Plan, "plan", cfg.Plan, "print the split plan instead of the pieces")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log the computed plan to stderr")

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger := cliconfig.Logger(false)
		logger.Error().Err(err).Msg("cablesplit")
		os.Exit(1)
	}
}
