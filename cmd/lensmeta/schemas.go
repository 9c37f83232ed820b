package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/lensmeta/metadata"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the registered metadata schemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range metadata.SchemaIDs() {
			v, err := id.Version()
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %s\n", v, id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}
