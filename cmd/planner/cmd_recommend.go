package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/pergola-planner/internal/content"
	"github.com/wichananm65/pergola-planner/internal/infrastructure/config"
	"github.com/wichananm65/pergola-planner/internal/planner"
	"github.com/wichananm65/pergola-planner/internal/recommend"
)

func (c *cli) recommendCmd() *cobra.Command {
	var (
		form   planner.Form
		output string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank catalog plans for a space",
		Example: `  planner recommend --width 15 --depth 20 --style modern
  planner recommend --width 18 --depth 18 --catalog plans.yaml --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ves := form.Validate(); len(ves) > 0 {
				return fmt.Errorf("invalid input: %s", formatErrors(ves))
			}
			space, _ := form.Space()

			plans, err := c.loadPlans()
			if err != nil {
				return err
			}
			recs := recommend.Recommend(space, plans)
			c.log.Info("recommendations",
				zap.Float64("width", space.Width),
				zap.Float64("depth", space.Depth),
				zap.Int("count", len(recs)))

			page := content.Default(c.v.GetString(config.KeyViewAllURL), "")
			switch output {
			case "json":
				return writeJSON(cmd.OutOrStdout(), recommend.Response{
					Recommendations: recs,
					Count:           len(recs),
					Fallback:        page.FallbackFor(len(recs)),
				})
			case "text":
				return writeTable(cmd.OutOrStdout(), recs, page)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Width, "width", "", "space width in feet")
	f.StringVar(&form.Depth, "depth", "", "space depth in feet")
	f.StringVar(&form.UseCase, "use-case", "", "main use (dining, lounge, hottub, general)")
	f.StringVar(&form.Style, "style", "", "style preference (modern, farmhouse, tropical, classic)")
	f.StringVarP(&output, "output", "o", "text", "output format (text, json)")
	f.String("catalog", "", "YAML catalog file (default: built-in plans)")
	_ = c.v.BindPFlag(config.KeyCatalogFile, f.Lookup("catalog"))
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("depth")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, recs []recommend.Recommendation, page content.Content) error {
	if fb := page.FallbackFor(len(recs)); fb != nil {
		_, err := fmt.Fprintf(w, "%s\n%s\n", fb.Message, fb.ViewAllURL)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAN\tSIZE\tSCORE\tCOVERAGE\tSIDE\tFRONT")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d%%\t%s ft\t%s ft\n",
			r.Title, r.SpecValue("size"), r.Score, r.AreaCoveragePct, r.BufferWidth, r.BufferDepth)
	}
	return tw.Flush()
}

func formatErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + errs[k]
	}
	return strings.Join(parts, "; ")
}
