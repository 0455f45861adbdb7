package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"cinemax-cli/model"
	"cinemax-cli/service"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the movies now showing",
		Long:  `Print every movie in the catalog with its showtimes and ticket price.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			renderCatalog(cmd, service.NewCatalog().Movies())
		},
	}
}

func renderCatalog(cmd *cobra.Command, movies []model.Movie) {
	rowConfigAutoMerge := table.RowConfig{AutoMerge: true}
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"#", "Title", "Genre", "Duration", "Rating", "Price", "Showtime"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true, WidthMax: 24},
		{Number: 3, AutoMerge: true},
		{Number: 4, AutoMerge: true},
		{Number: 5, AutoMerge: true},
		{Number: 6, AutoMerge: true},
	})
	t.Style().Options.SeparateRows = true

	for _, movie := range movies {
		var rows []table.Row
		for _, showtime := range movie.Showtimes {
			rows = append(rows, table.Row{
				movie.Id,
				movie.Title,
				strings.TrimSpace(movie.Genre),
				movie.Duration,
				fmt.Sprintf("%.1f", movie.Rating),
				fmt.Sprintf("$%d", movie.Price),
				showtime,
			})
		}
		t.AppendRows(rows, rowConfigAutoMerge)
		t.AppendSeparator()
	}

	t.Render()
}
