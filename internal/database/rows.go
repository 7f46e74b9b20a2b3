package database

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/01moynul/instituto-dashboard/internal/models"
)

// scanRowMaps reads every remaining row into column-keyed maps. The result is
// never nil, so it encodes as [] rather than null.
func scanRowMaps(rows *sql.Rows) ([]models.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	// Not every driver reports column types; a nil slice means "unknown".
	var types []*sql.ColumnType
	if ct, err := rows.ColumnTypes(); err == nil && len(ct) == len(columns) {
		types = ct
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		entry := make(models.Row, len(columns))
		for i, col := range columns {
			typeName := ""
			if types != nil {
				typeName = types[i].DatabaseTypeName()
			}
			entry[col] = normalizeValue(typeName, values[i])
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// normalizeValue turns raw []byte column values into numbers or strings.
// The text protocol returns every column as bytes; numeric columns are
// parsed back so JSON keeps them as numbers.
func normalizeValue(typeName string, val any) any {
	b, ok := val.([]byte)
	if !ok {
		return val
	}
	s := string(b)

	switch strings.ToUpper(typeName) {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case "UNSIGNED TINYINT", "UNSIGNED SMALLINT", "UNSIGNED MEDIUMINT", "UNSIGNED INT", "UNSIGNED BIGINT":
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return n
		}
	case "DECIMAL", "FLOAT", "DOUBLE":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}
