package engine

// Scoring constants.
const (
	pointsPerShift   = 1  // piece moved down one row by gravity
	pointsPerCell    = 1  // cell locked into the board
	pointsPerRowCell = 10 // multiplied by width and by the row's rank in the pass
)

// Score is a non-decreasing point counter.
type Score struct {
	points int
}

// Add credits n points. Non-positive amounts are ignored.
func (s *Score) Add(n int) {
	if n > 0 {
		s.points += n
	}
}

// Value returns the current total.
func (s Score) Value() int {
	return s.points
}

// rowClearPoints is the award for the k-th full row (1-based) found in a
// single detection pass. Later rows in the same pass are worth more.
func rowClearPoints(width, k int) int {
	return width * pointsPerRowCell * k
}
