package grid

import "strings"

// UsedCols returns the number of columns up to and including the last one
// that any cell reaches, ignoring the headroom padding.
func (g *Grid) UsedCols() int {
	used := 0
	for _, row := range g.positions {
		for c := len(row) - 1; c >= used; c-- {
			if row[c] != nil {
				used = c + 1
				break
			}
		}
	}
	return used
}

// ToMarkdown renders the logical grid as a markdown table. Spanned cells
// repeat their text in every position they cover.
func (g *Grid) ToMarkdown() string {
	if g.Rows == 0 {
		return ""
	}
	cols := g.UsedCols()
	if cols == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []*Cell) {
		for c := 0; c < cols; c++ {
			sb.WriteString("| ")
			if row[c] != nil {
				sb.WriteString(escapeMarkdown(row[c].Text))
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(g.positions[0])
	for c := 0; c < cols; c++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for r := 1; r < g.Rows; r++ {
		writeRow(g.positions[r])
	}

	return sb.String()
}

// escapeMarkdown escapes characters that break markdown table cells
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	text = strings.ReplaceAll(text, "\r", "")
	return strings.ReplaceAll(text, "\n", " ")
}
