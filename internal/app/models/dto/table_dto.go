package dto

// TableData is a rendered result table; every cell is display text
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text" or "number"
	Align string `json:"align"` // "left" or "right"
}
