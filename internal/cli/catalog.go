package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/workcheck/internal/catalog"
	"github.com/rileyhilliard/workcheck/internal/config"
	"github.com/rileyhilliard/workcheck/internal/ui"
	"github.com/rileyhilliard/workcheck/internal/util"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the statuses a check can report",
	Long: `List every entry in the active status catalog: the built-in one, or
the file named by catalog_file / --catalog.

Examples:
  workcheck catalog
  workcheck catalog --catalog ~/statuses.toml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadSettings(cmd.Flags())
		if err != nil {
			if catalogJSON {
				return jsonFailure(out, err)
			}
			return err
		}
		return runCatalog(out, cfg, catalogOptions{
			JSON:  catalogJSON,
			Color: stdoutIsTerminal(),
		})
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(catalogCmd)
}

type catalogOptions struct {
	JSON  bool
	Color bool
}

// CatalogOutput is the JSON shape of the catalog listing.
type CatalogOutput struct {
	Source   string          `json:"source"`
	Total    int             `json:"total"`
	Working  int             `json:"working"`
	Statuses []CatalogStatus `json:"statuses"`
}

// CatalogStatus is one catalog entry in JSON output. KnownIcon is false when
// the icon falls back to the default glyph.
type CatalogStatus struct {
	Working   bool   `json:"working"`
	Answer    string `json:"answer"`
	Message   string `json:"message"`
	Icon      string `json:"icon"`
	KnownIcon bool   `json:"known_icon"`
}

// catalogSource names where the catalog came from.
func catalogSource(cfg *config.Config) string {
	if cfg.CatalogFile == "" {
		return "built-in"
	}
	return cfg.CatalogFile
}

func runCatalog(w io.Writer, cfg *config.Config, opts catalogOptions) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		if opts.JSON {
			return jsonFailure(w, err)
		}
		return err
	}

	if opts.JSON {
		return WriteJSONSuccess(w, newCatalogOutput(catalogSource(cfg), cat))
	}

	rows := make([]ui.CatalogRow, 0, cat.Len())
	for _, e := range cat.Entries() {
		rows = append(rows, ui.CatalogRow{
			Working: e.Working(),
			Answer:  string(e.Answer()),
			Icon:    e.Icon(),
			Message: e.Message(),
		})
	}

	fmt.Fprintln(w, ui.RenderCatalogTable(rows, opts.Color))
	fmt.Fprintf(w, "%d %s (%d working) from %s\n",
		cat.Len(), util.Pluralize(cat.Len(), "status", "statuses"), cat.CountWorking(), catalogSource(cfg))

	for i, row := range rows {
		if ui.KnownIcon(row.Icon) {
			continue
		}
		near := util.SuggestSimilar(row.Icon, ui.IconNames(), 3)
		fmt.Fprintf(w, "%s status #%d: unknown icon %q is shown as %s (closest: %s)\n",
			ui.SymbolWarning, i+1, row.Icon, ui.DefaultIcon, util.JoinOrDefault(near, "none"))
	}
	return nil
}

func newCatalogOutput(source string, cat *catalog.Catalog) CatalogOutput {
	out := CatalogOutput{
		Source:   source,
		Total:    cat.Len(),
		Working:  cat.CountWorking(),
		Statuses: make([]CatalogStatus, 0, cat.Len()),
	}
	for _, e := range cat.Entries() {
		out.Statuses = append(out.Statuses, CatalogStatus{
			Working:   e.Working(),
			Answer:    string(e.Answer()),
			Message:   e.Message(),
			Icon:      e.Icon(),
			KnownIcon: ui.KnownIcon(e.Icon()),
		})
	}
	return out
}
