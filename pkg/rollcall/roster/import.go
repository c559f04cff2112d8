package roster

import (
	"context"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportWorkbook loads identity records from the first sheet of an Excel
// workbook into the store. The first row is the header; the identifier and
// name columns are found by substring, every other headed column becomes an
// attribute. Rows without an identifier are skipped. Returns the number of
// records written.
func (s *Store) ImportWorkbook(ctx context.Context, path string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, storeErr("import", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, storeErr("import", errors.New("workbook has no sheets"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return 0, storeErr("import", err)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	idCol, nameCol, attrCols := classifyColumns(rows[0])
	if idCol < 0 {
		return 0, storeErr("import", errors.New("no identifier column in header row"))
	}

	count := 0
	for _, row := range rows[1:] {
		id := strings.Join(strings.Fields(cellAt(row, idCol)), "")
		if id == "" {
			continue
		}

		identity := Identity{ID: id, Name: strings.TrimSpace(cellAt(row, nameCol))}
		for col, label := range attrCols {
			if val := strings.TrimSpace(cellAt(row, col)); val != "" {
				if identity.Attrs == nil {
					identity.Attrs = make(map[string]string)
				}
				identity.Attrs[label] = val
			}
		}

		if err := s.Put(ctx, identity); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// classifyColumns finds the identifier and name columns in the header row.
// Remaining headed columns map to their trimmed label.
func classifyColumns(header []string) (idCol, nameCol int, attrCols map[int]string) {
	idCol, nameCol = -1, -1
	attrCols = make(map[int]string)
	for i, raw := range header {
		label := strings.TrimSpace(raw)
		h := strings.ToLower(label)
		switch {
		case idCol < 0 && strings.Contains(h, "id"):
			idCol = i
		case nameCol < 0 && strings.Contains(h, "name"):
			nameCol = i
		case label != "":
			attrCols[i] = label
		}
	}
	return idCol, nameCol, attrCols
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
