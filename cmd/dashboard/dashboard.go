package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"launchdash/config"
	"launchdash/models"
	"launchdash/store"
	"launchdash/web/handlers"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	rootCmd := &cobra.Command{
		Use:   "launchdash",
		Short: "Interactive dashboard of rocket launch records",
		Long:  "launchdash serves a dashboard of launch outcomes by site and payload mass,\nread once at startup from a csv or xlsx file.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			flags.ApplyEnv(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}
	flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Print launch and payload statistics per site",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, dataset, err := load(flags)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), dataset)
		},
	})
	rootCmd.Version = version

	return rootCmd
}

func load(flags *config.Flags) (*config.Dashboard, *store.Dataset, error) {
	dashboardConfig, err := config.LoadDashboard(flags.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	dataset, err := store.Load(flags.DataPath, dashboardConfig.Columns)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't load dataset: %w", err)
	}
	return dashboardConfig, dataset, nil
}

func serve(ctx context.Context, flags *config.Flags) error {
	dashboardConfig, dataset, err := load(flags)
	if err != nil {
		log.Fatalf("couldn't start dashboard: %v", err)
	}

	// Initialise UI
	dashboard, err := handlers.NewDashboard(dataset, dashboardConfig)
	if err != nil {
		log.Fatalf("couldn't create dashboard: %v", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialise Server
	server := handlers.NewServer(dashboard)
	return server.Start(ctx, flags.Addr)
}

func printSummary(w io.Writer, dataset *store.Dataset) error {
	summaries, err := dataset.Summaries()
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Site", "Launches", "Successes", "Success rate", "Mean payload (kg)", "Median payload (kg)"})
	for _, s := range summaries {
		row := table.Row{s.Site, s.Launches, s.Successes, fmt.Sprintf("%.1f%%", s.SuccessRate*100), s.MeanPayload, s.MedianPayload}
		if s.Site == models.ALL_SITES {
			t.AppendFooter(row)
			continue
		}
		t.AppendRow(row)
	}
	t.Render()

	payload := dataset.PayloadRange()
	_, err = fmt.Fprintf(w, "payload range: %v – %v kg\n", payload.Min, payload.Max)
	return err
}
