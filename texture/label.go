package texture

import (
	"strconv"

	"github.com/gogpu/debugtex"
)

// CellLabel returns the label of cell (x, y): a column letter followed by
// the row number counted up from the bottom, so the top-left cell of a
// 16x16 grid is "A15" and the bottom-right one "P0".
//
// x must be less than len(debugtex.ColumnLetters); Config.Validate ensures
// this for every cell.
func CellLabel(cells, x, y int) string {
	return debugtex.ColumnLetters[x:x+1] + strconv.Itoa(cells-y-1)
}
