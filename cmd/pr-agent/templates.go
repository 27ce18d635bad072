package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rontor3/mcp-course/internal/config"
)

func newTemplatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage the PR template directory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print every template in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := newServices().Catalog.List()
			if err != nil {
				return err
			}
			return outputJSON(all)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Write any missing default templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := newServices().Catalog.Seed()
			if err != nil {
				return err
			}
			if len(written) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "all default templates already present in %s\n", config.TemplatesDir())
				return nil
			}
			for _, f := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
			}
			return nil
		},
	})
	return cmd
}
