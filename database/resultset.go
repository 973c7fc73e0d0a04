package database

import (
	"database/sql"
	"fmt"
)

// Row maps column names to values. Driver byte slices are returned as strings
// and SQL NULL as nil.
type Row map[string]any

// resultSet is the buffered reply of a row-producing statement.
type resultSet struct {
	columns []string
	rows    []Row
	pos     int
}

// newResultSet drains and closes rows.
func newResultSet(rows *sql.Rows) (*resultSet, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	rs := &resultSet{columns: columns}

	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}

		rs.rows = append(rs.rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return rs, nil
}

// Len is the number of rows in the reply, consumed or not.
func (rs *resultSet) Len() int64 {
	if rs == nil {
		return 0
	}
	return int64(len(rs.rows))
}

// Next returns the next unconsumed row, or nil when drained.
func (rs *resultSet) Next() Row {
	if rs == nil || rs.pos >= len(rs.rows) {
		return nil
	}
	row := rs.rows[rs.pos]
	rs.pos++
	return row
}

// Drain returns every unconsumed row. The slice is never nil.
func (rs *resultSet) Drain() []Row {
	if rs == nil {
		return []Row{}
	}
	rest := make([]Row, 0, len(rs.rows)-rs.pos)
	rest = append(rest, rs.rows[rs.pos:]...)
	rs.pos = len(rs.rows)
	return rest
}

func (rs *resultSet) Columns() []string {
	if rs == nil {
		return nil
	}
	return append([]string(nil), rs.columns...)
}
