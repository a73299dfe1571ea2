package main

import (
	"fmt"

	"digital-zoo/internal/domain/zoo"
	"digital-zoo/internal/router"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Admit the canonical animals into the configured store",
	Long:  "Admits Thor, Theo, Kibo and Kali into the store selected by db.dsn (in-memory when empty) and prints the resulting report.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repo, err := router.NewRepository(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	svc := zoo.NewService(repo, log)

	recs, err := svc.SeedCanonical(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range recs {
		fmt.Fprintf(out, "admitted %s %s (%s)\n", r.ID, r.Name, r.Species)
	}
	fmt.Fprintln(out)

	report, err := svc.Report(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(out, report)
	return nil
}
