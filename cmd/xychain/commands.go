// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xychain/chain"
	"github.com/katalvlaran/xychain/fixture"
	"github.com/katalvlaran/xychain/grid"
)

var (
	errNotRoundTrip   = errors.New("grid does not survive a round trip")
	errFixturesFailed = errors.New("fixtures failed")
)

// app holds flag values and the logger shared by all subcommands.
type app struct {
	verbose     bool
	lenient     bool
	strictCells bool
	parallel    bool
	jobs        int
	pattern     string

	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "xychain",
		Short: "Two-axis chain graphs: grid fixtures and event logs",
		Long: `xychain builds chain graphs from event logs and renders them as ASCII grids.

Grid tokens: 'o' node, 'x' node tagged into a Y-chain, '-' horizontal link,
'|' vertical link, ' ' blank. Even rows are X-chains, even columns are nodes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.lenient, "lenient", false, "allow a Y-chain to join different node ids")
	pf.BoolVar(&a.strictCells, "strict-cells", false, "reject link symbols in cell positions")

	root.AddCommand(
		&cobra.Command{
			Use:   "decode [grid-file|-]",
			Short: "Print the event log a grid decodes to, as YAML",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runDecode,
		},
		a.encodeCmd(),
		&cobra.Command{
			Use:   "check [grid-file|-]",
			Short: "Decode, fold and re-encode a grid; fail unless it round-trips",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runCheck,
		},
		&cobra.Command{
			Use:   "digest [grid-file|-]",
			Short: "Print the BLAKE3 digest of the graph a grid describes",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runDigest,
		},
		a.verifyCmd(),
	)

	return root
}

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [events-file|-]",
		Short: "Fold a YAML event log and print its grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runEncode,
	}
	cmd.Flags().BoolVar(&a.parallel, "parallel", false, "insert X-chains concurrently")

	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Run every YAML fixture below dir",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runVerify,
	}
	cmd.Flags().StringVar(&a.pattern, "pattern", fixture.DefaultPattern, "doublestar pattern relative to dir")
	cmd.Flags().IntVarP(&a.jobs, "jobs", "j", 4, "fixtures run at once")

	return cmd
}

func (a *app) chainOptions() []chain.Option {
	opts := []chain.Option{chain.WithLogger(a.logger)}
	if a.lenient {
		opts = append(opts, chain.WithLenientIdentity())
	}
	return opts
}

// readInput reads the named file, or stdin when name is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (a *app) decode(cmd *cobra.Command, args []string) (string, []chain.Event, error) {
	text, err := readInput(cmd, args)
	if err != nil {
		return "", nil, err
	}
	events, err := grid.Decode(text, grid.WithStrictCells(a.strictCells))
	if err != nil {
		return "", nil, err
	}
	a.logger.Debug("grid decoded", zap.Int("events", len(events)))

	return text, events, nil
}

func (a *app) runDecode(cmd *cobra.Command, args []string) error {
	_, events, err := a.decode(cmd, args)
	if err != nil {
		return err
	}
	specs, err := fixture.Specs(events)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(specs); err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	return enc.Close()
}

func (a *app) runEncode(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	events, err := fixture.ParseEvents([]byte(text))
	if err != nil {
		return err
	}

	var g *chain.Graph
	if a.parallel {
		g, err = chain.ReduceParallel(cmd.Context(), events, a.chainOptions()...)
	} else {
		g, err = chain.Reduce(events, a.chainOptions()...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), grid.Encode(g))

	return err
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	text, events, err := a.decode(cmd, args)
	if err != nil {
		return err
	}
	g, err := chain.Reduce(events, a.chainOptions()...)
	if err != nil {
		return err
	}

	want, got := grid.Normalize(text), grid.Encode(g)
	if want != got {
		a.logger.Warn("round trip mismatch", zap.String("want", want), zap.String("got", got))
		return fmt.Errorf("%w:\nwant:\n%s\ngot:\n%s", errNotRoundTrip, want, got)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", g.Digest())

	return err
}

func (a *app) runDigest(cmd *cobra.Command, args []string) error {
	_, events, err := a.decode(cmd, args)
	if err != nil {
		return err
	}
	g, err := chain.Reduce(events, a.chainOptions()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Digest())

	return err
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	if a.jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1, got %d", a.jobs)
	}
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	paths, err := fixture.Discover(root, a.pattern)
	if err != nil {
		return err
	}
	a.logger.Info("fixtures discovered", zap.String("root", root), zap.Int("count", len(paths)))

	runner := fixture.NewRunner(
		fixture.WithRunnerLogger(a.logger),
		fixture.WithLimit(a.jobs),
		fixture.WithChainOptions(a.chainOptions()...),
	)
	results, err := runner.RunFiles(cmd.Context(), paths)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, res := range results {
		if res.Passed() {
			fmt.Fprintf(w, "PASS %s\n", res.Path)
			continue
		}
		fmt.Fprintf(w, "FAIL %s: %v\n", res.Path, res.Err)
	}
	failed := len(fixture.Failed(results))
	fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(results), errFixturesFailed)
	}

	return nil
}
