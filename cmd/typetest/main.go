// Package main provides the CLI entrypoint for typetest.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typetest/internal/catalog"
	"github.com/verte-zerg/typetest/internal/config"
	"github.com/verte-zerg/typetest/internal/console"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/report"
	"github.com/verte-zerg/typetest/internal/scoring"
	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/tui"
)

const (
	defaultDifficulty = "easy"
	defaultLiveTimer  = true
)

var (
	testDifficulty string
	testLiveTimer  bool
	testPlain      bool
	testTextsDir   string

	samplesDifficulty string

	scoreSample  string
	scoreTyped   string
	scoreElapsed time.Duration
	scoreLevel   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetest",
		Short:         "Typing speed test",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().StringVar(&testDifficulty, "difficulty", defaultDifficulty, "difficulty tier (easy, medium, hard)")
	rootCmd.Flags().BoolVar(&testLiveTimer, "live-timer", defaultLiveTimer, "update the time display while typing")
	rootCmd.Flags().BoolVar(&testPlain, "plain", false, "use line-based prompts instead of the TUI")
	rootCmd.Flags().StringVar(&testTextsDir, "texts-dir", "", "directory with easy.txt, medium.txt, hard.txt")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSamplesCmd())
	rootCmd.AddCommand(newScoreCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "difficulty", &testDifficulty, fileCfg.Test.Difficulty)
	applyBoolConfig(cmd, "live-timer", &testLiveTimer, fileCfg.Test.LiveTimer)
	applyBoolConfig(cmd, "plain", &testPlain, fileCfg.Test.Plain)
	applyStringConfig(cmd, "texts-dir", &testTextsDir, fileCfg.Test.TextsDir)

	tier, err := parseDifficulty("--difficulty", testDifficulty)
	if err != nil {
		return err
	}
	cfg := model.Config{
		Difficulty: tier,
		LiveTimer:  testLiveTimer,
		Plain:      testPlain,
		TextsDir:   testTextsDir,
	}

	cat, err := loadCatalog(cfg, fileCfg)
	if err != nil {
		return err
	}
	machine := session.NewMachine(catalog.NewProvider(cat))

	if cfg.Plain || !isInteractive() {
		runner := console.NewRunner(machine, cfg.Difficulty, cmd.InOrStdin(), cmd.OutOrStdout(), nil)
		if err := runner.Run(); err != nil {
			return fmt.Errorf("failed to run test: %w", err)
		}
		return nil
	}

	program := tea.NewProgram(tui.NewModel(machine, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadCatalog merges config pools with texts directory files over the built-in catalog.
func loadCatalog(cfg model.Config, fileCfg config.FileConfig) (*catalog.Catalog, error) {
	pools := fileCfg.Catalog.Pools()
	dir := cfg.TextsDir
	explicit := dir != ""
	if !explicit {
		dir = config.DefaultTextsDir()
	}
	dirPools, err := catalog.LoadDir(dir)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("failed to load texts: %w", err)
		}
		if _, statErr := os.Stat(dir); statErr == nil {
			logErrf("ignoring texts in %s: %v\n", dir, err)
		}
		return catalog.New(pools), nil
	}
	return catalog.New(catalog.Merge(pools, dirPools)), nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
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

func newSamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List sample sentences",
		Args:  cobra.NoArgs,
		RunE:  runSamplesCmd,
	}
	cmd.Flags().StringVar(&samplesDifficulty, "difficulty", "", "only list this tier")
	cmd.Flags().StringVar(&testTextsDir, "texts-dir", "", "directory with easy.txt, medium.txt, hard.txt")
	return cmd
}

func runSamplesCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "texts-dir", &testTextsDir, fileCfg.Test.TextsDir)

	var tiers []model.Tier
	if samplesDifficulty != "" {
		tier, err := parseDifficulty("--difficulty", samplesDifficulty)
		if err != nil {
			return err
		}
		tiers = append(tiers, tier)
	}
	cat, err := loadCatalog(model.Config{TextsDir: testTextsDir}, fileCfg)
	if err != nil {
		return err
	}
	if err := report.RenderCatalog(cmd.OutOrStdout(), cat, tiers...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score typed text against a sample",
		Args:  cobra.NoArgs,
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreSample, "sample", "", "reference sentence")
	cmd.Flags().StringVar(&scoreTyped, "typed", "", "typed text")
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", 0, "time taken (e.g. 30s, 1m5s)")
	cmd.Flags().StringVar(&scoreLevel, "difficulty", defaultDifficulty, "level to report")
	_ = cmd.MarkFlagRequired("sample")
	_ = cmd.MarkFlagRequired("elapsed")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, _ []string) error {
	if strings.TrimSpace(scoreSample) == "" {
		return fmt.Errorf("--sample must not be empty")
	}
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	tier, err := parseDifficulty("--difficulty", scoreLevel)
	if err != nil {
		return err
	}
	res := scoring.Score(scoreSample, scoreTyped, scoreElapsed)
	if err := report.RenderResult(cmd.OutOrStdout(), tier, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func parseDifficulty(flag, value string) (model.Tier, error) {
	tier, ok := model.ParseTier(value)
	if !ok {
		return "", fmt.Errorf("%s must be one of easy, medium, hard (got %q)", flag, value)
	}
	return tier, nil
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetest configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# difficulty = %q     # easy, medium or hard
# live-timer = %t        # Update the time display while typing
# plain = false            # Line-based prompts instead of the TUI
# texts-dir = %q   # Directory with easy.txt, medium.txt, hard.txt

[catalog]
# Sentences listed here replace the built-in pool for that tier.
# easy = ["The quick brown fox jumps over the lazy dog."]
# medium = []
# hard = []
`,
		defaultDifficulty,
		defaultLiveTimer,
		config.DefaultTextsDir(),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
