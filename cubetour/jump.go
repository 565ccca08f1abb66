// SPDX-License-Identifier: MIT

package cubetour

// Jump is one move of the tour.
type Jump uint8

const (
	// Left moves −a2 to the previous column.
	Left Jump = iota
	// Right moves +a2 to the next column.
	Right
	// Up moves −a1 within a column.
	Up
	// Down moves +a1 within a column.
	Down
	// Out moves +a3 to the next sheet.
	Out
)

var jumpNames = [...]string{"left", "right", "up", "down", "out"}

// String returns the lower-case jump name.
func (j Jump) String() string {
	if int(j) < len(jumpNames) {
		return jumpNames[j]
	}

	return "jump(?)"
}
