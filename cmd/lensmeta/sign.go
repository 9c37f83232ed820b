package main

import (
	"fmt"

	"github.com/echa/config"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/signer"
)

var signKey string

var signCmd = &cobra.Command{
	Use:   "sign FILE",
	Short: "Sign a document with the reference BLAKE2b signer",
	Long: `Sign validates FILE, signs the canonical form of its lens object with a
keyed BLAKE2b-256 MAC and prints the signed document. The key is read from
--key or sign.key as hex. This signer is meant for development only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if signKey != "" {
			config.Set("sign.key", signKey)
		}
		key := config.GetString("sign.key")
		if key == "" {
			log.Warn("Signing with an empty key.")
		}
		s, err := signer.Blake2bHex(key)
		if err != nil {
			return err
		}
		opt := parseOpt()
		ctx := parseContext(opt)
		_, tree, err := decodeFile(args[0], opt)
		if err != nil {
			return report(args[0], err)
		}
		m, err := metadata.Parse(ctx, tree)
		if err != nil {
			return report(args[0], err)
		}
		signed, err := metadata.SignAny(ctx, m, s)
		if err != nil {
			return err
		}
		buf, err := json.MarshalIndent(signed, "", "  ")
		if err != nil {
			return fmt.Errorf("output error: %v", err)
		}
		fmt.Println(string(buf))
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signKey, "key", "", "hex encoded signing `key`")
	rootCmd.AddCommand(signCmd)
}
