package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/janekbaraniewski/priceanatomy/internal/catalog"
	"github.com/janekbaraniewski/priceanatomy/internal/config"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/export"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the cars in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(cmd.Context(), a.source())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, it := range cat.Items() {
				fmt.Fprintf(w, "%-16s %-28s ~%s %s\n",
					it.ID, it.DisplayName(), core.FormatMillions(it.Total(), core.CardPlaces), core.CurrencyUnit)
			}
			return nil
		},
	}
}

// lookupOrReport prints the not-found fallback for an unknown id. It returns
// ok=false in that case; an unknown id is not a command failure.
func lookupOrReport(w io.Writer, cat *core.Catalog, id string) (core.Item, bool, error) {
	it, err := cat.Lookup(core.ItemID(id))
	if errors.Is(err, core.ErrItemNotFound) {
		fmt.Fprintf(w, "Car not found: %s\n", id)
		return core.Item{}, false, nil
	}
	if err != nil {
		return core.Item{}, false, err
	}
	return it, true, nil
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the cost breakdown of one car",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(cmd.Context(), a.source())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			it, ok, err := lookupOrReport(w, cat, args[0])
			if err != nil || !ok {
				return err
			}
			printBreakdown(w, it, a.cfg.UI.MinVisiblePercent)
			return nil
		},
	}
}

func printBreakdown(w io.Writer, it core.Item, minVisible float64) {
	if it.Year > 0 {
		fmt.Fprintf(w, "%s (%d)\n", it.DisplayName(), it.Year)
	} else {
		fmt.Fprintf(w, "%s\n", it.DisplayName())
	}
	if specs := strings.Join(nonEmpty(it.Specs.Engine, it.Specs.Power, it.Specs.Range), " · "); specs != "" {
		fmt.Fprintf(w, "%s\n", specs)
	}
	fmt.Fprintf(w, "Total %s %s\n\n", core.FormatMillions(it.Total(), core.DetailPlaces), core.CurrencyUnit)

	res := geometry.ComputeWidths(it.Layers, minVisible)
	running := make(map[core.LayerID]decimal.Decimal, len(it.Layers))
	for i, total := range it.RunningTotals() {
		running[it.Layers[i].ID] = total
	}

	fmt.Fprintf(w, "  %-16s %8s  %6s  %10s\n", "Layer", "Amount", "Share", "Cumulative")
	for _, l := range it.LegendOrder() {
		seg, _ := res.Segment(l.ID)
		note := ""
		if seg.Clamped {
			note = fmt.Sprintf(" (shown as %s)", core.FormatPercent(seg.WidthPercent))
		}
		fmt.Fprintf(w, "  %-16s %8s  %6s  %10s%s", l.Label,
			core.FormatMillions(l.Amount, core.DetailPlaces),
			core.FormatPercent(seg.RawPercent),
			core.FormatMillions(running[l.ID], core.DetailPlaces),
			note)
		if l.Description != "" {
			fmt.Fprintf(w, "  %s", l.Description)
		}
		fmt.Fprintln(w)
	}
	if res.Degenerate {
		fmt.Fprintln(w, "  no cost data")
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func newExportCmd(a *app) *cobra.Command {
	var (
		format        string
		out           string
		active        string
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Render one car as SVG or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(cmd.Context(), a.source())
			if err != nil {
				return err
			}
			it, ok, err := lookupOrReport(cmd.OutOrStdout(), cat, args[0])
			if err != nil || !ok {
				return err
			}

			var data []byte
			switch strings.ToLower(format) {
			case "svg":
				data = export.RenderSVG(it,
					export.WithSize(width, height),
					export.WithMinVisible(a.cfg.UI.MinVisiblePercent),
					export.WithActive(core.LayerID(active)))
			case "json":
				data, err = export.RenderJSON(it, export.WithJSONMinVisible(a.cfg.UI.MinVisiblePercent))
				if err != nil {
					return fmt.Errorf("export: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want svg or json)", format)
			}
			return writeOutput(cmd, out, data)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&active, "active", "", "render with this layer highlighted (svg)")
	cmd.Flags().Float64Var(&width, "width", 0, "svg canvas width (default 800)")
	cmd.Flags().Float64Var(&height, "height", 0, "svg canvas height (default 320)")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.FromContext(cmd.Context()).Info("wrote file", "path", path, "bytes", len(data))
	return nil
}

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import or export the catalog",
	}
	cmd.AddCommand(newCatalogImportCmd(a), newCatalogExportCmd(a))
	return cmd
}

func newCatalogImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a catalog JSON file into the SQLite catalog database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			dbPath := a.cfg.Catalog.DB
			if dbPath == "" {
				dbPath = config.DefaultCatalogDB()
			}
			store, err := catalog.OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Replace(cmd.Context(), cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d cars into %s\n", cat.Len(), dbPath)
			return nil
		},
	}
}

func newCatalogExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(cmd.Context(), a.source())
			if err != nil {
				return err
			}
			var buf strings.Builder
			if err := catalog.Encode(&buf, cat); err != nil {
				return err
			}
			return writeOutput(cmd, out, []byte(buf.String()))
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
