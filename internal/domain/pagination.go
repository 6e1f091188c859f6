package domain

// PlanPages returns the page numbers to show as controls.
//
// With totalPages <= window every page is listed. Otherwise the window is
// centred on currentPage and shifted left when it would run past the last
// page, so it always holds exactly window entries.
func PlanPages(currentPage, totalPages, window int) []int {
	if totalPages <= 0 || window <= 0 {
		return []int{}
	}

	if totalPages <= window {
		return pageRange(1, totalPages)
	}

	half := window / 2
	start := max(1, currentPage-half)
	end := min(totalPages, start+window-1)

	if end-start+1 < window {
		start = max(1, end-window+1)
	}

	return pageRange(start, end)
}

func pageRange(start, end int) []int {
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
