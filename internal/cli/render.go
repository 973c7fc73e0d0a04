package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/lucasvillarinho/sqlsession/database"
)

func cell(value any) string {
	if value == nil {
		return "NULL"
	}
	return fmt.Sprint(value)
}

// renderTable writes rows as a table with one column per name, in order.
func renderTable(w io.Writer, columns []string, rows []database.Row) error {
	if len(columns) == 0 {
		return nil
	}

	data := pterm.TableData{columns}
	for _, row := range rows {
		line := make([]string, len(columns))
		for i, column := range columns {
			line[i] = cell(row[column])
		}
		data = append(data, line)
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	_, err = fmt.Fprintln(w, out)
	return err
}

func renderJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
