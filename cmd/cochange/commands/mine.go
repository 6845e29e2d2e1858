// Package commands hosts the cochange CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/cochange/internal/config"
	"github.com/Sumatoshi-tech/cochange/internal/export"
	"github.com/Sumatoshi-tech/cochange/internal/miner"
	"github.com/Sumatoshi-tech/cochange/internal/profiling"
	"github.com/Sumatoshi-tech/cochange/internal/report"
	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

// MineCommand holds the flag state for the mine command.
type MineCommand struct {
	limit       int
	outDir      string
	configPath  string
	cpuProfile  string
	heapProfile string
	compress    bool
	plot        bool
	top         int
}

// NewMineCommand creates and configures the mine command.
func NewMineCommand() *cobra.Command {
	mc := &MineCommand{}

	cobraCmd := &cobra.Command{
		Use:   "mine [directory]",
		Short: "Mine co-change coupling from the repository's history",
		Long: `Mine walks a bounded window of commits from the current branch tip,
derives weighted co-change edges between the files touched in each commit
transition, and writes three CSV artifacts: node_list.csv, edge_list.csv
and adjacency_matrix.csv.

The repository is located by walking upward from the given directory
(default: the working directory), the way plain git commands do.`,
		Args: cobra.MaximumNArgs(1),
		RunE: mc.run,
	}

	cobraCmd.Flags().IntVar(&mc.limit, "limit", 0, "Max commits to walk from the branch tip (0 = config default)")
	cobraCmd.Flags().StringVarP(&mc.outDir, "out-dir", "o", "", "Directory for CSV artifacts (default: config or CWD)")
	cobraCmd.Flags().StringVarP(&mc.configPath, "config", "c", "", "Explicit config file path")
	cobraCmd.Flags().StringVar(&mc.cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	cobraCmd.Flags().StringVar(&mc.heapProfile, "heapprofile", "", "Write heap profile to file")
	cobraCmd.Flags().BoolVar(&mc.compress, "compress", false, "LZ4-compress the CSV artifacts")
	cobraCmd.Flags().BoolVar(&mc.plot, "plot", false, "Also render coupling.html with the top couples")
	cobraCmd.Flags().IntVar(&mc.top, "top", 0, "Rows in the terminal summary and plot (0 = config default)")

	return cobraCmd
}

// run executes the mining pipeline: profile setup, config resolution,
// repository discovery, traversal, export, report.
func (mc *MineCommand) run(cmd *cobra.Command, args []string) error {
	startedAt := time.Now()

	stopProfiler, err := profiling.MaybeStartCPUProfile(mc.cpuProfile)
	if err != nil {
		return err
	}

	defer stopProfiler()

	cfg, err := mc.resolveConfig(cmd)
	if err != nil {
		return err
	}

	startDir, err := resolveStartDir(args)
	if err != nil {
		return err
	}

	logger := slog.Default()

	repo, err := gitlib.DiscoverRepository(startDir)
	if err != nil {
		return err
	}
	defer repo.Free()

	logger.Debug("discovered repository", "path", repo.Path(), "window", cfg.History.Window)

	result, err := miner.Run(repo, miner.Options{
		Window:         cfg.History.Window,
		RejectPatterns: cfg.Filter.Reject,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	err = os.MkdirAll(cfg.Output.Dir, 0o755)
	if err != nil {
		return fmt.Errorf("create output dir %s: %w", cfg.Output.Dir, err)
	}

	writer := export.NewWriter(cfg.Output.Dir, cfg.Output.Compress, logger)

	err = writer.WriteAll(result.Graph)
	if err != nil {
		return err
	}

	if cfg.Output.Plot {
		err = writer.WritePlot(result.Graph, cfg.Report.Top)
		if err != nil {
			return err
		}
	}

	profiling.MaybeWriteHeapProfile(mc.heapProfile, logger)

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		report.Print(os.Stdout, result.Graph, report.Stats{
			Commits:     result.Commits,
			Transitions: result.Transitions,
			Elapsed:     time.Since(startedAt),
		}, cfg.Report.Top)
	}

	return nil
}

// resolveConfig loads the config file and applies flag overrides on top.
// Flags explicitly set on the command line win over file and environment.
func (mc *MineCommand) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(mc.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("limit") {
		cfg.History.Window = mc.limit
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.Output.Dir = mc.outDir
	}

	if cmd.Flags().Changed("compress") {
		cfg.Output.Compress = mc.compress
	}

	if cmd.Flags().Changed("plot") {
		cfg.Output.Plot = mc.plot
	}

	if cmd.Flags().Changed("top") {
		cfg.Report.Top = mc.top
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// resolveStartDir resolves the discovery start directory from command args.
func resolveStartDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	// Expand ~ to home directory.
	if strings.HasPrefix(dir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		dir = strings.Replace(dir, "~", home, 1)
	}

	return dir, nil
}
