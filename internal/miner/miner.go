// Package miner wires history traversal, change-set extraction and graph
// accumulation into a single synchronous run.
package miner

import (
	"log/slog"

	"github.com/Sumatoshi-tech/cochange/internal/coupling"
	"github.com/Sumatoshi-tech/cochange/internal/history"
	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

// Options configures a mining run.
type Options struct {
	// Window caps the number of leading commits walked from the branch tip.
	// Zero selects history.DefaultWindow.
	Window int
	// RejectPatterns overrides the default path rejection rules when set.
	RejectPatterns []string
	// Logger receives per-transition debug output.
	Logger *slog.Logger
}

// Result is the outcome of a mining run. The graph is sorted and read-only
// from here on.
type Result struct {
	Graph       *coupling.Graph
	Transitions int
	Commits     int
}

// Run folds every commit transition in the window into a coupling graph.
// The graph is owned by the run: it is mutated only by this loop and sorted
// once before being returned.
func Run(repo *gitlib.Repository, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	filter := coupling.NewFilter(opts.RejectPatterns)
	graph := coupling.NewGraph()
	driver := history.NewDriver(repo, opts.Window, logger)

	transitions := 0

	err := driver.Each(func(tr history.Transition) error {
		files := coupling.ExtractChangeSet(tr.Changes, filter)
		coupling.Accumulate(graph, files)

		transitions++

		logger.Debug("processed transition",
			"commit", tr.Commit,
			"predecessor", tr.Predecessor,
			"files", len(files),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	graph.Sort()

	commits := 0
	if transitions > 0 {
		commits = transitions + 1
	}

	return &Result{Graph: graph, Transitions: transitions, Commits: commits}, nil
}
