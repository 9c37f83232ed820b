package main

import (
	"fmt"
	"strings"

	"github.com/echa/config"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/lensmeta/metadata"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export SCHEMA",
	Short: "Print the JSON Schema of a registered schema",
	Long: `Export prints the JSON Schema document of SCHEMA, given either as the full
$schema URL or as its kind (for example text-only or profile).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := lookupSchema(args[0])
		if err != nil {
			return err
		}
		s, err := metadata.ExportJSONSchema(id)
		if err != nil {
			return err
		}
		buf, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("output error: %v", err)
		}
		if exportFormat != "" {
			config.Set("output.format", exportFormat)
		}
		switch f := config.GetString("output.format"); f {
		case "json":
		case "yaml":
			var tree any
			if err := json.Unmarshal(buf, &tree); err != nil {
				return err
			}
			if buf, err = yaml.Marshal(tree); err != nil {
				return fmt.Errorf("output error: %v", err)
			}
		default:
			return fmt.Errorf("unsupported output format %q", f)
		}
		fmt.Println(strings.TrimRight(string(buf), "\n"))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output `format` (json|yaml)")
	rootCmd.AddCommand(exportCmd)
}

// lookupSchema resolves a full id or a kind such as "text-only".
func lookupSchema(name string) (metadata.SchemaID, error) {
	var kinds []string
	for _, id := range metadata.SchemaIDs() {
		if string(id) == name {
			return id, nil
		}
		kind := schemaKind(id)
		if kind == name {
			return id, nil
		}
		kinds = append(kinds, kind)
	}
	return "", fmt.Errorf("unknown schema %q, expected one of %s", name, strings.Join(kinds, ", "))
}

// schemaKind returns the path segment naming a schema: the post kind for
// posts, otherwise the document family.
func schemaKind(id metadata.SchemaID) string {
	parts := strings.Split(string(id), "/")
	if len(parts) < 2 {
		return string(id)
	}
	return parts[len(parts)-2]
}
