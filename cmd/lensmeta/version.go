package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	ORG_NAME          = "Lens"
	APP_NAME          = "lensmeta"
	VERSION    string = "v0.1.0"
	GITCOMMIT  string = "dev"
	ENV_PREFIX        = "LENSMETA"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of " + APP_NAME,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s %s -- %s\n", ORG_NAME, APP_NAME, VERSION, GITCOMMIT)
		fmt.Printf("Go version (client): %s\n", runtime.Version())
	},
}
