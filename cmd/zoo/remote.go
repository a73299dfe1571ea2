package main

import (
	"fmt"
	"strings"

	"digital-zoo/internal/adapters/zooapi"

	"github.com/spf13/cobra"
)

var flagURL string

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Query a running zoo server",
}

func init() {
	remoteCmd.PersistentFlags().StringVar(&flagURL, "url", "", "server base URL (default: client.base_url from config)")

	remoteCmd.AddCommand(&cobra.Command{
		Use:   "sounds",
		Short: "Make every registered animal sound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newRemoteClient(cmd)
			if err != nil {
				return err
			}
			lines, err := c.Sounds(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	})

	remoteCmd.AddCommand(&cobra.Command{
		Use:   "report",
		Short: "Print the full report of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newRemoteClient(cmd)
			if err != nil {
				return err
			}
			report, err := c.Report(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	})

	remoteCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered animals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newRemoteClient(cmd)
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", a.ID, a.Name, a.Species, a.Age)
			}
			return nil
		},
	})
}

func newRemoteClient(cmd *cobra.Command) (*zooapi.Client, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.Client.BaseURL
	if strings.TrimSpace(flagURL) != "" {
		baseURL = flagURL
	}
	return zooapi.New(baseURL, cfg.Client.Timeout)
}
