// Package report renders command-line tables.
package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/depeter/cutscene/internal/movie"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// History renders every catalogue movie with its played state.
func History(r *movie.Registry) string {
	rows := make([][]string, 0, movie.MovieCount)
	for id := movie.ID(0); int(id) < movie.MovieCount; id++ {
		played := "no"
		if r.HasPlayed(id) {
			played = "yes"
		}
		subs := ""
		if movie.ForcesSubtitles(id) {
			subs = "always"
		}
		rows = append(rows, []string{
			strconv.Itoa(int(id)),
			id.String(),
			id.AssetPath(),
			subs,
			played,
		})
	}
	return renderTable(
		[]string{"#", "Movie", "Asset", "Subtitles", "Played"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}
