package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"kmlmap/internal/kml"
)

// refreshTable rebuilds the overlay table for the current mode from
// the in-memory summary.
func (m *Model) refreshTable() {
	if m.summary == nil {
		m.tblMode = tableNone
		m.status = "no document loaded"
		return
	}
	var (
		cols []table.Column
		rows []table.Row
	)
	switch m.tblMode {
	case tableCounts:
		cols, rows = buildCountsTable(m.summary)
	case tableDetails:
		cols, rows = buildDetailsTable(m.summary)
	default:
		return
	}
	if len(rows) == 0 {
		m.tblMode = tableNone
		m.status = "nothing to tabulate"
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func buildCountsTable(s *kml.Summary) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "Type", Width: 16},
		{Title: "Count", Width: 8},
	}
	order := []kml.GeometryType{
		kml.TypePoint,
		kml.TypeLineString,
		kml.TypeMultiLineString,
		kml.TypePlacemark,
	}
	rows := make([]table.Row, 0, len(order))
	for _, typ := range order {
		rows = append(rows, table.Row{string(typ), fmt.Sprintf("%d", s.Counts[typ])})
	}
	return cols, rows
}

func buildDetailsTable(s *kml.Summary) ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 20},
		{Title: "Type", Width: 16},
		{Title: "Length (m)", Width: 12},
		{Title: "Vertices", Width: 9},
	}
	rows := make([]table.Row, 0, len(s.Records))
	for i, rec := range s.Records {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			rec.Name,
			string(rec.Type),
			fmt.Sprintf("%.2f", rec.Length),
			fmt.Sprintf("%d", len(rec.Coordinates)),
		})
	}
	return cols, rows
}
