package entity

// PaginationInput selects a window of a list. Limit 0 means no limit.
type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// Bounds returns the [start, end) slice bounds of the window over n items.
func (pg *PaginationInput) Bounds(n int) (int, int) {
	if pg == nil {
		return 0, n
	}

	start := min(max(pg.Offset, 0), n)
	if pg.Limit <= 0 {
		return start, n
	}

	return start, min(start+pg.Limit, n)
}
