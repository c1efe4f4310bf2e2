// Package main provides the CLI entrypoint for wordfall.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordfall/internal/backend"
	"github.com/verte-zerg/wordfall/internal/config"
	"github.com/verte-zerg/wordfall/internal/content"
	"github.com/verte-zerg/wordfall/internal/game"
	"github.com/verte-zerg/wordfall/internal/geom"
	"github.com/verte-zerg/wordfall/internal/model"
	"github.com/verte-zerg/wordfall/internal/rng"
	"github.com/verte-zerg/wordfall/internal/stats"
	"github.com/verte-zerg/wordfall/internal/statsui"
	"github.com/verte-zerg/wordfall/internal/store"
	"github.com/verte-zerg/wordfall/internal/tui"
)

const (
	defaultMode        = "normal"
	defaultCurveWindow = 10
	defaultHistoryLast = 20
	defaultBoardLimit  = 20
)

var (
	playMode     string
	playSeed     int64
	playTiersDir string

	statsSince       string
	statsLast        int
	statsCurveWindow int

	historyLast int

	boardPeriod string
	boardLimit  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordfall",
		Short:         "TUI typing-action game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playMode, "mode", defaultMode, "game mode: normal, boss_battle, or practice")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 uses a time seed)")
	rootCmd.Flags().StringVar(&playTiersDir, "tiers-dir", "", "directory with word tier overrides")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Game.Mode)
	applyInt64Config(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyStringConfig(cmd, "tiers-dir", &playTiersDir, fileCfg.Game.TiersDir)

	cfg := model.Config{
		Mode:     model.GameMode(playMode),
		Seed:     playSeed,
		TiersDir: playTiersDir,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	provider := content.NewProvider()
	tiersDir := cfg.TiersDir
	if tiersDir == "" {
		tiersDir = config.DefaultTiersDir()
	}
	if err := provider.LoadTierOverrides(tiersDir); err != nil {
		return fmt.Errorf("failed to load tier overrides: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	be := backend.New(st)
	collab := game.CollaboratorFunc(func(record model.GameSessionRecord) error {
		_, err := be.SubmitGameSession(context.Background(), record)
		return err
	})

	paths := geom.DefaultTable()
	factory := func() (*game.Session, error) {
		return game.NewSession(cfg.Mode, provider, paths, rng.New(cfg.Seed), collab)
	}
	playModel, err := tui.NewModel(factory)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	program := tea.NewProgram(playModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Browse stats",
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	model := statsui.NewModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "number of sessions to print")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	sessions, err := backend.New(st).FetchHistory(context.Background(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	return stats.RenderHistoryTable(cmd.OutOrStdout(), sessions)
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Print the local leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runLeaderboardCmd,
	}
	cmd.Flags().StringVar(&boardPeriod, "period", string(model.PeriodAll), "period: all, week, or month")
	cmd.Flags().IntVar(&boardLimit, "limit", defaultBoardLimit, "number of entries to print")
	return cmd
}

func runLeaderboardCmd(cmd *cobra.Command, _ []string) error {
	period := model.LeaderboardPeriod(boardPeriod)
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	entries, err := backend.New(st).FetchLeaderboard(context.Background(), period, boardLimit)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return stats.RenderLeaderboardTable(cmd.OutOrStdout(), period, entries)
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Print lifetime stats",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	profile, err := backend.New(st).FetchProfile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	return stats.RenderProfile(cmd.OutOrStdout(), profile)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordfall configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = %q          # Game mode: normal, boss_battle, or practice
# seed = 0                # Random seed (0 uses a time seed)
# tiers-dir = ""          # Directory with word tier overrides
`,
		defaultMode,
	)
}

func validateConfig(cfg model.Config) error {
	switch cfg.Mode {
	case model.ModeNormal, model.ModeBossBattle, model.ModePractice:
	default:
		return fmt.Errorf("--mode must be normal, boss_battle, or practice")
	}
	if cfg.TiersDir != "" {
		info, err := os.Stat(cfg.TiersDir)
		if err != nil {
			return fmt.Errorf("--tiers-dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("--tiers-dir must be a directory")
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
