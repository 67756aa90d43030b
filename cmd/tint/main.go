package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/atomikpanda/tint/internal/color"
	"github.com/atomikpanda/tint/internal/config"
	"github.com/atomikpanda/tint/internal/icons"
	"github.com/atomikpanda/tint/internal/platform"
	"github.com/atomikpanda/tint/internal/reporter"
	"github.com/atomikpanda/tint/internal/text"
)

func main() {
	root := buildRoot(platform.Capture(os.Args[1:]))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by every command, filled in before a command runs.
type app struct {
	snap       platform.Snapshot
	configFile string
	forceColor bool
	noColor    bool

	cfg     config.Config
	styles  *color.Table
	unicode bool
	level   int
	log     *reporter.Reporter
}

func buildRoot(snap platform.Snapshot) *cobra.Command {
	a := &app{snap: snap}

	root := &cobra.Command{
		Use:   "tint",
		Short: "Style terminal text with ANSI colors",
		Long: `tint wraps text in ANSI escape sequences, nesting styles without color
bleed, and falls back to plain text when the terminal does not support color.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "path to config file (default "+config.Path(snap)+")")
	root.PersistentFlags().BoolVar(&a.forceColor, "color", false, "force colored output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.paintCmd(),
		a.stylesCmd(),
		a.detectCmd(),
		a.logCmd(),
		a.iconsCmd(),
		a.widthCmd(),
		a.pickCmd(),
		a.configCmd(),
	)
	return root
}

// setup loads the config and builds the style table and reporter.
// --color and --no-color take precedence over the config file.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configFile == "" {
		a.configFile = config.Path(a.snap)
	}
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.level = level

	enabled := cfg.ColorEnabled(a.snap)
	switch {
	case a.noColor:
		enabled = false
	case a.forceColor:
		enabled = !a.snap.Has("NO_COLOR")
	}
	a.styles = color.New(enabled)
	a.unicode = cfg.UnicodeEnabled(a.snap)
	a.log = reporter.New(cmd.ErrOrStderr(), a.styles, reporter.Options{Level: level, Unicode: a.unicode})

	slog.SetDefault(slog.New(a.log.Handler()))
	slog.Debug("config loaded", "path", a.configFile, "color", enabled, "unicode", a.unicode)
	return nil
}

// --- paint -------------------------------------------------------------------

func (a *app) paintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paint <style[,style...]> <text...>",
		Short: "Print text with one or more styles applied",
		Example: `  tint paint red "hello"
  tint paint bold,underline,cyan hello world`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			styles, err := parseStyles(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.Chain(strings.Join(args[1:], " "), styles...))
			return nil
		},
	}
}

// parseStyles parses a comma-separated style list.
func parseStyles(list string) ([]color.Style, error) {
	var styles []color.Style
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s, err := color.ParseStyle(name)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}
	if len(styles) == 0 {
		return nil, fmt.Errorf("no style given in %q", list)
	}
	return styles, nil
}

// --- styles ------------------------------------------------------------------

func (a *app) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List every style with a preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.styles.Apply(color.Bold, fmt.Sprintf("%-18s  %-8s  %s", "STYLE", "CODES", "PREVIEW")))
			fmt.Fprintln(out, a.styles.Apply(color.Dim, rule(48)))
			for _, s := range color.Styles() {
				open, closeCode := s.Codes()
				fmt.Fprintf(out, "%s  %-8s  %s\n",
					text.PadRight(s.String(), 18),
					fmt.Sprintf("%d/%d", open, closeCode),
					a.styles.Apply(s, "The quick brown fox"))
			}
			return nil
		},
	}
}

// --- detect ------------------------------------------------------------------

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Explain whether color and unicode output are enabled",
		Run: func(cmd *cobra.Command, args []string) {
			d := color.Decide(a.snap)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "os:       %s\n", a.snap.OS)
			fmt.Fprintf(out, "tty:      %t\n", a.snap.StdoutTTY)
			fmt.Fprintf(out, "term:     %s\n", a.snap.Get("TERM"))
			fmt.Fprintf(out, "detected: %s (rule: %s)\n", onOff(d.Enabled), d.Rule)
			fmt.Fprintf(out, "config:   color=%s unicode=%s\n", modeName(a.cfg.Color), modeName(a.cfg.Unicode))
			fmt.Fprintf(out, "color:    %s\n", onOff(a.styles.Enabled()))
			fmt.Fprintf(out, "unicode:  %s\n", onOff(a.unicode))
		},
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

func modeName(m config.Mode) string {
	if m == "" {
		return string(config.ModeAuto)
	}
	return string(m)
}

// --- log ---------------------------------------------------------------------

func (a *app) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <type> <message...>",
		Short: "Print a message the way the reporter shows the given log type",
		Example: `  tint log success "build finished"
  tint log warn disk almost full`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := icons.Parse(args[0])
			if err != nil {
				return err
			}
			r := reporter.New(cmd.OutOrStdout(), a.styles, reporter.Options{Level: a.level, Unicode: a.unicode})
			r.Log(t, "%s", strings.Join(args[1:], " "))
			return nil
		},
	}
}

// --- icons -------------------------------------------------------------------

func (a *app) iconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List log types with their icon, fallback and color",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, a.styles.Apply(color.Bold, fmt.Sprintf("%-8s  %-4s  %-5s  %-5s  %s", "TYPE", "ICON", "ASCII", "LEVEL", "COLOR")))
			fmt.Fprintln(out, a.styles.Apply(color.Dim, rule(44)))
			for _, t := range icons.Types() {
				glyph, ascii := icons.Glyph(t, true), icons.Glyph(t, false)
				colorName := "-"
				if s, ok := icons.StyleOf(t); ok {
					glyph = a.styles.Apply(s, glyph)
					ascii = a.styles.Apply(s, ascii)
					colorName = s.String()
				}
				fmt.Fprintf(out, "%-8s  %s  %s  %-5d  %s\n",
					t, text.PadRight(glyph, 4), text.PadRight(ascii, 5), t.Level(), colorName)
			}
			return nil
		},
	}
}

// --- width -------------------------------------------------------------------

func (a *app) widthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width <text...>",
		Short: "Print the number of terminal columns text occupies",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), text.Width(strings.Join(args, " ")))
		},
	}
}

// --- pick --------------------------------------------------------------------

func (a *app) pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a style interactively and preview it",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(color.Styles()))
			for _, s := range color.Styles() {
				names = append(names, s.String())
			}

			var choice string
			sample := "The quick brown fox"
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Style").
						Options(huh.NewOptions(names...)...).
						Value(&choice),
					huh.NewInput().
						Title("Sample text").
						Value(&sample),
				),
			)
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("style picker: %w", err)
			}

			s, err := color.ParseStyle(choice)
			if err != nil {
				return err
			}
			open, closeCode := s.Codes()
			fmt.Fprintln(cmd.OutOrStdout(), a.styles.Apply(s, sample))
			fmt.Fprintf(cmd.OutOrStdout(), "tint paint %s %q  # \\x1b[%dm … \\x1b[%dm\n", s, sample, open, closeCode)
			return nil
		},
	}
}

// --- config ------------------------------------------------------------------

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configFile); err == nil && !force {
				return fmt.Errorf("config %q already exists (use --force to overwrite)", a.configFile)
			}
			if err := config.Save(a.configFile, config.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			a.log.Success("wrote %s", a.configFile)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), a.configFile)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Run: func(cmd *cobra.Command, args []string) {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "color:   %s\n", modeName(a.cfg.Color))
				fmt.Fprintf(out, "unicode: %s\n", modeName(a.cfg.Unicode))
				fmt.Fprintf(out, "level:   %s (%d)\n", a.cfg.Level, a.level)
			},
		},
		initCmd,
	)
	return cmd
}

// rule returns a horizontal separator n columns wide.
func rule(n int) string {
	return strings.Repeat("-", n)
}
