package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

func newProvincesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "provinces",
		Short: "List the provinces with bundled tax tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := taxdata.Load()
			if err != nil {
				return err
			}
			for _, code := range tables.ProvinceCodes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, tables.Provinces[code].Name)
			}
			return nil
		},
	}
}
