package dataset

const (
	ColumnFirstName = "firstName"
	ColumnLastName  = "lastName"
	ColumnGameDate  = "gameDate"
	ColumnGameType  = "gameType"
	ColumnPoints    = "points"
	ColumnWin       = "win"
	ColumnPlusMinus = "plusMinusPoints"

	ColumnPersonID = "personId"
	ColumnTeam     = "playerteamName"
	ColumnOpponent = "opponentteamName"
	ColumnHome     = "home"
)

var requiredColumns = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnGameDate,
	ColumnGameType,
	ColumnPoints,
	ColumnWin,
	ColumnPlusMinus,
}

// header maps column names to their index in a row.
type header map[string]int

func newHeader(names []string) (header, error) {
	h := make(header, len(names))
	for i, name := range names {
		if i == 0 {
			name = trimBOM(name)
		}
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := h[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}
	return h, nil
}

// get returns the cell of column in row, or "" for an optional column absent from the file.
func (h header) get(row []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func trimBOM(s string) string {
	const bom = "\ufeff"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
