package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"mindspace/internal/bootstrap"
	timerdto "mindspace/internal/modules/timer/dto"
	"mindspace/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootFlags struct {
	dataDir   string
	ephemeral bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "mindspace",
		Short:         "Private focus timer and personal archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.LoadDotEnv()
		},
	}
	root.PersistentFlags().StringVar(&flags.dataDir, "data", defaultDataDir(), "data directory for the local archive")
	root.PersistentFlags().BoolVar(&flags.ephemeral, "ephemeral", false, "keep the archive in memory for this run only")

	root.AddCommand(newTUICmd(flags))
	root.AddCommand(newTimerCmd(flags))
	root.AddCommand(newRoadmapCmd(flags))
	root.AddCommand(newNotesCmd(flags))
	return root
}

func defaultDataDir() string {
	if v := strings.TrimSpace(os.Getenv("MINDSPACE_DATA")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mindspace"
	}
	return filepath.Join(home, ".mindspace")
}

func loadApp(flags *rootFlags) (*bootstrap.App, error) {
	cfg, err := config.New(flags.dataDir)
	if err != nil {
		return nil, err
	}
	if flags.ephemeral {
		cfg.Storage = config.StorageMemory
	}
	return bootstrap.New(cfg)
}

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the personal space terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(app)
		},
	}
}

func newTimerCmd(flags *rootFlags) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Focus countdown"}

	run := &cobra.Command{
		Use:   "run <minutes>",
		Short: "Run a countdown in the foreground until it expires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("minutes must be an integer: %w", err)
			}
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			expired := make(chan struct{})
			unwatch := app.TimerCLI.Watch(func(state timerdto.StateOutput) {
				_, _ = fmt.Fprintf(out, "\r%s ", state.Display)
				if state.Phase == "expired" {
					close(expired)
				}
			})
			defer unwatch()

			if _, err := app.TimerCLI.Start(ctx, minutes); err != nil {
				return err
			}
			select {
			case <-expired:
				_, _ = fmt.Fprintln(out, "\nfocus session complete")
			case <-ctx.Done():
				_, _ = fmt.Fprintln(out, "\ninterrupted")
			}
			return nil
		},
	}

	presets := &cobra.Command{
		Use:   "presets",
		Short: "List configured durations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			for _, p := range app.TimerCLI.Presets() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d min\n", p)
			}
			return nil
		},
	}

	timer.AddCommand(run, presets)
	return timer
}

func newRoadmapCmd(flags *rootFlags) *cobra.Command {
	roadmap := &cobra.Command{Use: "roadmap", Short: "Self-reflection roadmap record"}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the roadmap record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			r := app.ArchiveCLI.Roadmap(context.Background())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "learn:     %s\nstruggle:  %s\nnext step: %s\n", r.Learn, r.Struggle, r.NextStep)
			return nil
		},
	}

	var learn, struggle, nextStep string
	set := &cobra.Command{
		Use:   "set --learn <text> --struggle <text> --next <text>",
		Short: "Overwrite the roadmap record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			ctx := context.Background()
			current := app.ArchiveCLI.Roadmap(ctx)
			if !cmd.Flags().Changed("learn") {
				learn = current.Learn
			}
			if !cmd.Flags().Changed("struggle") {
				struggle = current.Struggle
			}
			if !cmd.Flags().Changed("next") {
				nextStep = current.NextStep
			}
			if err := app.ArchiveCLI.SaveRoadmap(ctx, learn, struggle, nextStep); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "roadmap saved")
			return nil
		},
	}
	set.Flags().StringVar(&learn, "learn", "", "what you learned")
	set.Flags().StringVar(&struggle, "struggle", "", "what you struggled with")
	set.Flags().StringVar(&nextStep, "next", "", "your next step")

	roadmap.AddCommand(show, set)
	return roadmap
}

func newNotesCmd(flags *rootFlags) *cobra.Command {
	notes := &cobra.Command{Use: "notes", Short: "Personal notes history"}

	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List notes in stored order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			items := app.ArchiveCLI.Notes(context.Background())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(items)
			}
			for _, n := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.Date, n.Text)
			}
			return nil
		},
	}
	list.Flags().BoolVar(&asJSON, "json", false, "print notes as JSON")

	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Append a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			n, err := app.ArchiveCLI.AddNote(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note added: %s at=%s\n", n.ID, n.Date)
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.ArchiveCLI.DeleteNote(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note removed: %s\n", args[0])
			return nil
		},
	}

	notes.AddCommand(list, add, rm)
	return notes
}
