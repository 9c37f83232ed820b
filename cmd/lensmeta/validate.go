package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/legacy"
	"github.com/reoring/lensmeta/metadata"
	"github.com/reoring/lensmeta/source"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate metadata documents (use - for stdin)",
	Long: `Validate decodes every FILE as JSON or YAML and checks it against the
schema selected by its $schema. Documents carrying a legacy version field
are validated as legacy publications.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := parseOpt()
		ctx := parseContext(opt)
		var errs error
		for _, name := range args {
			what, err := validateFile(ctx, name, opt)
			if err != nil {
				errs = multierr.Append(errs, report(name, err))
				continue
			}
			printOK(name, what)
		}
		return summarize(errs)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateFile(ctx context.Context, name string, opt lensmeta.ParseOpt) (string, error) {
	data, tree, err := decodeFile(name, opt)
	if err != nil {
		return "", err
	}
	switch kindOf(data, tree) {
	case source.KindLegacy:
		p, err := legacy.ParsePublication(ctx, tree)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("legacy publication %s", p.Version), nil
	default:
		m, err := metadata.Parse(ctx, tree)
		if err != nil {
			return "", err
		}
		return string(m.SchemaID()), nil
	}
}

// kindOf routes a document. JSON input is sniffed from the raw bytes, other
// input from the decoded tree.
func kindOf(data []byte, tree any) source.Kind {
	if source.IsJSON(data) {
		return source.SniffKind(data)
	}
	m, ok := lensmeta.AsObject(tree)
	if !ok {
		return source.KindUnknown
	}
	if _, ok := m["$schema"].(string); ok {
		return source.KindCurrent
	}
	if _, ok := m["version"].(string); ok {
		return source.KindLegacy
	}
	return source.KindUnknown
}
