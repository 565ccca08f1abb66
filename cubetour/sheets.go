// SPDX-License-Identifier: MIT

package cubetour

// Sheets returns the p×p×p vertex layout: out[s][r][c] is the vertex at
// sheet s, row r, column c. Columns step by a2, rows by a1, sheets by a3.
func Sheets(p, a3 int) ([][][]int, error) {
	if err := validate(p, a3); err != nil {
		return nil, err
	}
	n := p * p * p
	out := make([][][]int, p)
	for s := range out {
		out[s] = make([][]int, p)
		for r := range out[s] {
			row := make([]int, p)
			for c := range row {
				row[c] = wrap(start+s*a3+c*p+r*p*p, n)
			}
			out[s][r] = row
		}
	}

	return out, nil
}

// Locate finds vertex v in a Sheets layout and returns its coordinates.
// ok is false when v is absent.
func Locate(sheets [][][]int, v int) (sheet, row, col int, ok bool) {
	for s, grid := range sheets {
		for r, line := range grid {
			for c, x := range line {
				if x == v {
					return s, r, c, true
				}
			}
		}
	}

	return 0, 0, 0, false
}
