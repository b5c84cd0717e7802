// SPDX-License-Identifier: MIT
// Package: xychain/fixture
//
// runner.go — discovery and bounded concurrent execution of fixture files.

package fixture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/xychain/chain"
)

// DefaultPattern matches every YAML file below the root.
const DefaultPattern = "**/*.{yaml,yml}"

// Discover returns the files below root matching the doublestar pattern,
// as root-joined paths in lexical order.
func Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("Discover: pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("Discover %s: %w", root, err)
	}
	sort.Strings(matches)

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(m))
	}

	return paths, nil
}

// Runner executes fixtures with bounded concurrency.
type Runner struct {
	logger    *zap.Logger
	limit     int
	chainOpts []chain.Option
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the logger. Panics on nil.
func WithRunnerLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("fixture: WithRunnerLogger(nil)")
	}
	return func(r *Runner) { r.logger = l }
}

// WithLimit caps the number of fixtures run at once. Panics if n < 1.
func WithLimit(n int) RunnerOption {
	if n < 1 {
		panic(fmt.Sprintf("fixture: WithLimit(%d) must be >= 1", n))
	}
	return func(r *Runner) { r.limit = n }
}

// WithChainOptions passes opts to every fold.
func WithChainOptions(opts ...chain.Option) RunnerOption {
	return func(r *Runner) { r.chainOpts = append(r.chainOpts, opts...) }
}

// NewRunner builds a Runner. Defaults: no-op logger, GOMAXPROCS workers.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop(), limit: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes fixtures and returns one Result per fixture, in input order.
// The only error returned is the context's.
func (r *Runner) Run(ctx context.Context, fixtures []*Fixture) ([]Result, error) {
	results := make([]Result, len(fixtures))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.limit)
	for i, f := range fixtures {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = f.Run(r.chainOpts...)
			r.report(results[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// RunFiles loads and runs each path. A file that fails to load yields a
// failed Result instead of aborting the batch.
func (r *Runner) RunFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	var (
		loaded []*Fixture
		slots  []int
	)
	for i, p := range paths {
		f, err := Load(p)
		if err != nil {
			results[i] = Result{Path: p, Err: err}
			r.report(results[i])
			continue
		}
		loaded = append(loaded, f)
		slots = append(slots, i)
	}

	ran, err := r.Run(ctx, loaded)
	if err != nil {
		return nil, err
	}
	for j, res := range ran {
		results[slots[j]] = res
	}

	return results, nil
}

func (r *Runner) report(res Result) {
	fields := []zap.Field{zap.String("fixture", res.Name), zap.String("path", res.Path), zap.String("kind", res.Kind)}
	if res.Passed() {
		r.logger.Debug("fixture passed", fields...)
		return
	}
	r.logger.Warn("fixture failed", append(fields, zap.Error(res.Err))...)
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, res := range results {
		if !res.Passed() {
			out = append(out, res)
		}
	}

	return out
}
