package cli

import (
	"fmt"
	"strings"

	"qrstudio/internal/catalog"
	"qrstudio/internal/domain/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the style presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			presets := cat.All()
			if group != "" {
				if !lo.ContainsBy(cat.Groups(), func(g string) bool { return strings.EqualFold(g, group) }) {
					return fmt.Errorf("unknown group %q (groups: %s)", group, strings.Join(cat.Groups(), ", "))
				}
				presets = lo.Filter(presets, func(p catalog.StylePreset, _ int) bool {
					return strings.EqualFold(p.Group, group)
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%d presets", len(presets))))
			fmt.Fprintln(out, presetTable(presets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list presets in this group")
	return cmd
}

func presetTable(presets []catalog.StylePreset) string {
	rows := lo.Map(presets, func(p catalog.StylePreset, _ int) []string {
		colors := colorSwatch(p.Foreground)
		if p.Gradient != nil {
			colors = colorSwatch(p.Gradient[0]) + " → " + colorSwatch(p.Gradient[1])
		}
		shapes := lo.Map(p.Shapes, func(s render.ShapeKey, _ int) string { return s.DisplayName() })
		return []string{p.Name, p.Group, string(p.Mask), colors, strings.Join(shapes, ", ")}
	})

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("Name", "Group", "Mask", "Colors", "Shapes").
		Rows(rows...).
		String()
}
