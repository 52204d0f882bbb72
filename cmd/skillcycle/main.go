// Package main provides the terminal client for the SkillCycle widgets.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"skillcycle/internal/config"
	"skillcycle/internal/content"
	"skillcycle/internal/domain"
	"skillcycle/internal/logger"
	"skillcycle/internal/tui"
)

// isTerminal reports whether f is attached to a TTY.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "skillcycle",
		Short:        "Play the SkillCycle demos in the terminal",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newPagesCmd())
	return rootCmd
}

func newDemoCmd() *cobra.Command {
	kinds := make([]string, len(domain.WidgetKinds))
	for i, k := range domain.WidgetKinds {
		kinds[i] = string(k)
	}
	return &cobra.Command{
		Use:       "demo <" + strings.Join(kinds, "|") + ">",
		Short:     "Run an interactive widget",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: kinds,
		RunE:      runDemoCmd,
	}
}

func runDemoCmd(_ *cobra.Command, args []string) error {
	kind, err := domain.ParseWidgetKind(args[0])
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("demo %s needs an interactive terminal", kind)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Log lines on stdout would tear the alt screen.
	if cfg.Logger.File == "" {
		cfg.Logger.File = os.DevNull
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := content.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	sched := tui.NewScheduler()
	model, err := tui.New(kind, tui.Deps{Catalog: catalog, Config: cfg, Sched: sched})
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	sched.Bind(program.Send)

	logger.Get().Info("Starting demo", zap.String("kind", string(kind)))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages [slug]",
		Short: "List the site pages or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := content.Load()
			if err != nil {
				return fmt.Errorf("failed to load content: %w", err)
			}
			if len(args) == 0 {
				listPages(cmd.OutOrStdout(), catalog.Pages)
				return nil
			}
			page, ok := catalog.Page(args[0])
			if !ok {
				return domain.NewPageNotFoundError(args[0])
			}
			printPage(cmd.OutOrStdout(), page)
			return nil
		},
	}
}

func listPages(w io.Writer, pages []domain.Page) {
	for _, p := range pages {
		fmt.Fprintf(w, "%-14s %s\n", p.Slug, p.Title)
	}
}

func printPage(w io.Writer, p domain.Page) {
	fmt.Fprintf(w, "%s\n%s\n\n%s\n", p.Title, p.Headline, p.Summary)
	if len(p.Stats) > 0 {
		fmt.Fprintln(w)
		for _, s := range p.Stats {
			fmt.Fprintf(w, "  %s%s  %s\n", s.Value, s.Suffix, s.Label)
		}
	}
	for _, sec := range p.Sections {
		fmt.Fprintf(w, "\n## %s\n", sec.Title)
		if sec.Body != "" {
			fmt.Fprintln(w, sec.Body)
		}
		for _, item := range sec.Items {
			if item.Description != "" {
				fmt.Fprintf(w, "- %s: %s\n", item.Title, item.Description)
			} else {
				fmt.Fprintf(w, "- %s\n", item.Title)
			}
			for _, pt := range item.Points {
				fmt.Fprintf(w, "    • %s\n", pt)
			}
		}
	}
}
