package layout

// ModalWidthSM is the width of the sort picker.
const ModalWidthSM = 36

// Standard UI element heights
const (
	HeaderHeight     = 2
	InputHeight      = 3
	StatusBarHeight  = 1
	PaginationHeight = 1
	FooterHeight     = 2
	CardHeight       = 7
)

// Card dimensions
const (
	CardMinWidth = 36
	MaxColumns   = 4
)

// CalculateContentHeight returns the rows left for the result list once the
// header, input, status line, pagination bar and footer are drawn.
func CalculateContentHeight(windowHeight int) int {
	h := windowHeight - HeaderHeight - InputHeight - StatusBarHeight - PaginationHeight - FooterHeight
	if h < CardHeight {
		return CardHeight
	}
	return h
}

// CalculateColumns returns how many cards fit side by side in width.
func CalculateColumns(width int) int {
	cols := width / CardMinWidth
	if cols < 1 {
		return 1
	}
	if cols > MaxColumns {
		return MaxColumns
	}
	return cols
}

// CalculateCardWidth returns the width of each card when cols share width.
func CalculateCardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := width / cols
	if w < CardMinWidth && width >= CardMinWidth {
		return CardMinWidth
	}
	return w
}

// CenterHorizontal calculates x position to center content
func CenterHorizontal(windowWidth, contentWidth int) int {
	if windowWidth <= contentWidth {
		return 0
	}
	return (windowWidth - contentWidth) / 2
}
