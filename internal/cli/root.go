package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/cli/commands"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/logger"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/tui"
)

func Execute() error {
	// A missing .env is normal.
	_ = godotenv.Load()
	return NewRoot().Execute()
}

var runTUI = func() error {
	cfg, err := commands.LoadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs always go to a file.
	logPath := cfg.Log.File
	if logPath == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		logPath = filepath.Join(dir, "promptopt.log")
	}
	log, err := logger.New(cfg.Log.Mode, logPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	presetsDir, err := config.PresetsDir()
	if err != nil {
		return err
	}
	idx, err := presets.NewIndex(presetsDir)
	if err != nil {
		log.Warn("presets unavailable", "dir", presetsDir, "error", err)
	}

	app := tui.NewApp(cfg, tui.WithPresets(idx), tui.WithLogger(log))
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "promptopt",
		Short:        "Turn rough task descriptions into structured instruction documents",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}
	root.AddCommand(
		commands.RenderCmd(),
		commands.AdviseCmd(),
		commands.SchemaCmd(),
		commands.ServeCmd(),
		commands.PresetsCmd(),
		commands.InitCmd(),
	)
	return root
}
