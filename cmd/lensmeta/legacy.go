package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/reoring/lensmeta/legacy"
)

var legacyProfile bool

var legacyCmd = &cobra.Command{
	Use:   "legacy FILE...",
	Short: "Validate legacy publication or profile documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := parseOpt()
		ctx := parseContext(opt)
		var errs error
		for _, name := range args {
			_, tree, err := decodeFile(name, opt)
			if err == nil {
				if legacyProfile {
					_, err = legacy.ParseProfile(ctx, tree)
				} else {
					_, err = legacy.ParsePublication(ctx, tree)
				}
			}
			if err != nil {
				errs = multierr.Append(errs, report(name, err))
				continue
			}
			if legacyProfile {
				printOK(name, "legacy profile")
			} else {
				printOK(name, "legacy publication")
			}
		}
		return summarize(errs)
	},
}

func init() {
	legacyCmd.Flags().BoolVar(&legacyProfile, "profile", false, "validate as legacy profile")
	rootCmd.AddCommand(legacyCmd)
}
