package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/lensmeta/metadata"
)

var canonicalRaw bool

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize FILE",
	Short: "Print the canonical form of a document's lens object",
	Long: `Canonicalize validates FILE and prints its lens object as JSON with
sorted keys. This is the exact message a signer receives. With --raw the
whole input is canonicalized without validation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := parseOpt()
		_, tree, err := decodeFile(args[0], opt)
		if err != nil {
			return report(args[0], err)
		}
		target := tree
		if !canonicalRaw {
			m, err := metadata.Parse(parseContext(opt), tree)
			if err != nil {
				return report(args[0], err)
			}
			target = m.LensDetails()
		}
		out, err := metadata.Canonicalize(target)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	canonicalizeCmd.Flags().BoolVar(&canonicalRaw, "raw", false, "canonicalize the input as is")
	rootCmd.AddCommand(canonicalizeCmd)
}
