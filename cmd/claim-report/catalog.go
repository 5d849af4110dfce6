// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/claim-report/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the checklist questions without prompting",
	Long: `Catalog prints every checklist question with the number it will be
asked under, grouped by section and subsection. Use --format yaml to get a
catalog file that can be edited and passed back with --catalog.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().String("format", "text", "output format: text, yaml, or json")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := reportConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	return writeCatalog(cmd.OutOrStdout(), cat, format)
}

func writeCatalog(w io.Writer, cat *catalog.Catalog, format string) error {
	switch format {
	case "text", "":
		return writeCatalogText(w, cat)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(cat)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cat)
	default:
		return fmt.Errorf("unsupported format %q: use text, yaml, or json", format)
	}
}

// writeCatalogText lists entries in the order and numbering used by a session.
func writeCatalogText(w io.Writer, cat *catalog.Catalog) error {
	r := lipgloss.NewRenderer(w)
	sectionStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E4A7D"))
	subsectionStyle := r.NewStyle().Foreground(lipgloss.Color("#6A8DBF"))

	var section, subsection string
	for i, e := range cat.Entries() {
		if e.Section != section {
			section = e.Section
			fmt.Fprintln(w, sectionStyle.Render(section))
		}
		if e.Subsection != "" && e.Subsection != subsection {
			subsection = e.Subsection
			fmt.Fprintln(w, "  "+subsectionStyle.Render(subsection))
		}
		fmt.Fprintf(w, "    %2d. %s\n", i+1, e.Question)
	}
	_, err := fmt.Fprintf(w, "\n%d questions\n", cat.Len())
	return err
}
