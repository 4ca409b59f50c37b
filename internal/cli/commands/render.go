package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikm-ai/prompt-engineering-optimization/internal/config"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/export"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/presets"
	"github.com/nikm-ai/prompt-engineering-optimization/internal/prompts"
)

type renderOptions struct {
	configPath string
	preset     string
	task       string
	taskFile   string
	outDir     string
	notes      bool
	noDefaults bool
}

func RenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render an instruction document",
		Long: "Render an instruction document from the saved defaults, a preset, or a YAML/TOML file.\n" +
			"The document goes to stdout unless --out is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Read preferences from a .yaml, .yml or .toml file")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Use a saved preset")
	cmd.Flags().StringVar(&opts.task, "task", "", "Task text")
	cmd.Flags().StringVar(&opts.taskFile, "task-file", "", "Read the task from a file (- for stdin)")
	cmd.Flags().StringVar(&opts.outDir, "out", "", "Write "+export.FileName+" into this directory")
	cmd.Flags().BoolVar(&opts.notes, "notes", false, "Print what changed to stderr")
	cmd.Flags().BoolVar(&opts.noDefaults, "no-defaults", false, "Start from an empty record instead of saved defaults")
	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	if opts.configPath != "" && opts.preset != "" {
		return errors.New("--config and --preset are mutually exclusive")
	}
	if opts.task != "" && opts.taskFile != "" {
		return errors.New("--task and --task-file are mutually exclusive")
	}

	rec, err := baseConfiguration(opts)
	if err != nil {
		return err
	}

	switch {
	case opts.task != "":
		rec.RawTask = opts.task
	case opts.taskFile != "":
		task, err := readTask(cmd, opts.taskFile)
		if err != nil {
			return err
		}
		rec.RawTask = task
	}

	document := newBuilder().Build(rec)

	if opts.outDir != "" {
		path, err := export.Save(opts.outDir, document)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), document)
	}

	if opts.notes {
		fmt.Fprintln(cmd.ErrOrStderr(), "What changed:")
		for _, note := range prompts.Analyze(rec.RawTask) {
			fmt.Fprintf(cmd.ErrOrStderr(), "- %s\n", note)
		}
	}
	return nil
}

func baseConfiguration(opts renderOptions) (prompts.Configuration, error) {
	switch {
	case opts.configPath != "":
		return config.LoadConfiguration(opts.configPath)
	case opts.preset != "":
		dir, err := config.PresetsDir()
		if err != nil {
			return prompts.Configuration{}, err
		}
		idx, err := presets.NewIndex(dir)
		if err != nil {
			return prompts.Configuration{}, err
		}
		p := idx.Get(opts.preset)
		if p == nil {
			if idx.Count() == 0 {
				return prompts.Configuration{}, fmt.Errorf("preset %q not found in %s", opts.preset, dir)
			}
			return prompts.Configuration{}, fmt.Errorf("preset %q not found in %s (available: %s)",
				opts.preset, dir, strings.Join(idx.Names(), ", "))
		}
		return p.Configuration, nil
	case opts.noDefaults:
		return prompts.Configuration{}, nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return prompts.Configuration{}, err
	}
	return cfg.Defaults, nil
}

func readTask(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read task from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read task file: %w", err)
	}
	return string(data), nil
}
