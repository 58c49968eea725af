package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/grain/internal/app"
	configpkg "github.com/kk-code-lab/grain/internal/config"
	"github.com/spf13/cobra"
)

const longHelp = `grain periodically re-reads a file or the output of a command and shows it
in a scrollable full-screen view.

Keys:
  Up/Down            scroll by line
  Left/Right         scroll by column
  PgUp/PgDn          scroll by page
  Home/End           jump to the left/right edge
  Ctrl+Home/Ctrl+End jump to the top/bottom
  q, Ctrl+C          quit`

func main() {
	var (
		intervalFlag string
		fileFlag     string
		commandFlag  []string
		speedFlag    float64
		watchFlag    bool
		configFlag   string
	)

	root := &cobra.Command{
		Use:           "grain",
		Short:         "Refreshing viewer for files and command output",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, intervalFlag, fileFlag, commandFlag, speedFlag, watchFlag, configFlag)
			if err != nil {
				return err
			}

			// Fallback encoding so non-UTF-8 locales still display content.
			tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

			app, err := apppkg.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("initializing application: %w", err)
			}
			defer func() {
				_ = app.Close()
			}()

			app.Run()
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&intervalFlag, "interval", "i", "1s", "refresh interval: 100ms, 1, 2s (minimum 100ms)")
	flags.StringVarP(&fileFlag, "file", "f", "", "file to view (default /proc/interrupts)")
	flags.StringArrayVarP(&commandFlag, "command", "c", nil, "command to run and view (takes precedence over --file)")
	flags.Float64VarP(&speedFlag, "speed", "s", 0, "refresh speed multiplier (0.1-10.0)")
	flags.BoolVarP(&watchFlag, "watch", "w", false, "also refresh immediately when the file changes")
	flags.StringVar(&configFlag, "config", "", "config file (default ~/.config/grain/config.toml)")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig layers explicit flags over config-file values over built-in
// defaults and validates the result.
func resolveConfig(cmd *cobra.Command, intervalFlag, fileFlag string, commandFlag []string, speedFlag float64, watchFlag bool, configFlag string) (configpkg.AppConfig, error) {
	var cfg configpkg.AppConfig

	path := configFlag
	if path == "" {
		if p, err := configpkg.DefaultFilePath(); err == nil {
			path = p
		}
	}
	var fileCfg configpkg.FileConfig
	if path != "" {
		var err error
		fileCfg, err = configpkg.LoadFile(path)
		if err != nil {
			return cfg, err
		}
	}

	intervalStr := intervalFlag
	if !cmd.Flags().Changed("interval") && fileCfg.Interval != "" {
		intervalStr = fileCfg.Interval
	}
	interval, err := configpkg.ParseInterval(intervalStr)
	if err != nil {
		return cfg, err
	}

	speed := speedFlag
	if !cmd.Flags().Changed("speed") && fileCfg.Speed != 0 {
		speed = fileCfg.Speed
	}
	cfg.Interval = configpkg.ApplySpeed(interval, speed)

	cfg.FilePath = fileFlag
	if !cmd.Flags().Changed("file") && fileCfg.File != "" {
		cfg.FilePath = fileCfg.File
	}

	cfg.Command = splitCommand(commandFlag)
	if !cmd.Flags().Changed("command") && len(fileCfg.Command) > 0 {
		cfg.Command = splitCommand(fileCfg.Command)
	}

	cfg.Watch = watchFlag
	if !cmd.Flags().Changed("watch") && fileCfg.Watch {
		cfg.Watch = true
	}
	if cfg.Watch && len(cfg.Command) > 0 {
		return cfg, fmt.Errorf("--watch applies only to file sources")
	}

	return cfg, nil
}

// splitCommand accepts both repeated arguments (-c prog -c arg) and a single
// shell-style string (-c "prog arg").
func splitCommand(parts []string) []string {
	if len(parts) == 1 && strings.ContainsRune(parts[0], ' ') {
		return strings.Fields(parts[0])
	}
	return parts
}
