package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/ui"
)

const defaultConfigPath = "~/.config/folio/folio.yaml"

// ---------- flags ----------

type startFlags struct {
	configPath   string
	breakpoint   int
	offset       int
	sidebarWidth int
	theme        string
	style        string
	wrap         int
	mouse        bool
	logFile      string
}

// apply copies explicitly set flags over the loaded configuration.
func (f startFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("breakpoint") {
		cfg.Breakpoint = f.breakpoint
	}
	if fl.Changed("offset") {
		cfg.DetectionOffset = f.offset
	}
	if fl.Changed("sidebar-width") {
		cfg.SidebarWidth = f.sidebarWidth
	}
	if fl.Changed("theme") {
		cfg.Theme = config.Theme(strings.ToLower(strings.TrimSpace(f.theme)))
	}
	if fl.Changed("style") {
		cfg.Style = f.style
	}
	if fl.Changed("wrap") {
		cfg.Wrap = f.wrap
	}
	if fl.Changed("mouse") {
		cfg.Mouse = f.mouse
	}
	if fl.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
}

// ---------- cobra CLI ----------

func newRootCmd() *cobra.Command {
	var flags startFlags
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "folio [portfolio.yaml]",
		Short:         "Personal portfolio in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flags.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if len(args) == 1 {
				cfg.Content = args[0]
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("stdout is not a TTY (refusing to render ANSI output)")
			}

			if cfg.LogFile != "" {
				f, err := tea.LogToFile(cfg.LogFile, "folio")
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			p, err := content.Load(cfg.Content)
			if err != nil {
				return err
			}

			dark := cfg.Theme == config.ThemeDark
			if cfg.Theme == config.ThemeAuto {
				dark = lipgloss.HasDarkBackground()
			}
			m := ui.New(p, ui.Options{
				Breakpoint:   cfg.Breakpoint,
				Offset:       cfg.DetectionOffset,
				SidebarWidth: cfg.SidebarWidth,
				Dark:         dark,
				Style:        cfg.Style,
				Wrap:         cfg.Wrap,
			})

			// size to the real terminal BEFORE starting Bubble Tea; an
			// unmeasurable terminal keeps the desktop layout until the
			// first resize
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
				m = m.Sized(w, h)
				if err := m.Err(); err != nil {
					return err
				}
			}
			log.Printf("starting: content=%q breakpoint=%d offset=%d", cfg.Content, cfg.Breakpoint, cfg.DetectionOffset)

			opts := []tea.ProgramOption{tea.WithAltScreen()}
			if cfg.Mouse {
				opts = append(opts, tea.WithMouseCellMotion())
			}
			_, err = tea.NewProgram(m, opts...).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", defaultConfigPath, "config file (YAML)")
	cmd.Flags().IntVar(&flags.breakpoint, "breakpoint", 0, "columns at which the side panel replaces the bottom bar")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "rows added to the scroll position when picking the active section")
	cmd.Flags().IntVar(&flags.sidebarWidth, "sidebar-width", 0, "side panel width in columns")
	cmd.Flags().StringVar(&flags.theme, "theme", "auto", "theme: auto, dark, light")
	cmd.Flags().StringVar(&flags.style, "style", "", "glamour style: dark, light, notty, dracula, pink, or a JSON style file path")
	cmd.Flags().IntVar(&flags.wrap, "wrap", 0, "wrap width (0 = auto to content width)")
	cmd.Flags().BoolVar(&flags.mouse, "mouse", true, "enable mouse clicks and wheel")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write debug log to this file")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a sample folio.yaml and portfolio.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
			cfgPath := filepath.Join(dir, "folio.yaml")
			contentPath := filepath.Join(dir, "portfolio.yaml")
			for _, p := range []string{cfgPath, contentPath} {
				if _, err := os.Stat(p); err == nil && !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", p)
				}
			}

			cfg := config.DefaultConfig()
			cfg.Content = contentPath
			if err := cfg.Save(cfgPath); err != nil {
				return err
			}
			if err := content.Default().Save(contentPath); err != nil {
				return err
			}

			ok := color.New(color.FgGreen, color.Bold)
			for _, p := range []string{cfgPath, contentPath} {
				_, _ = ok.Fprint(color.Output, "wrote ")
				_, _ = fmt.Fprintln(color.Output, p)
			}
			_, _ = fmt.Fprintf(color.Output, "run: folio --config %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
