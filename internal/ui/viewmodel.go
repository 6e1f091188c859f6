package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yourusername/repobrowser/internal/domain"
	"github.com/yourusername/repobrowser/internal/ui/components"
)

// CardView is the display form of one repository.
type CardView struct {
	Name        string
	FullName    string
	Owner       string
	Description string
	Language    string
	Stars       string
	URL         string

	// Set when Description or Language hold a placeholder.
	NoDescription bool
	NoLanguage    bool
}

// ViewModel is everything the search screen renders, derived from a session
// snapshot. It holds no behavior of its own.
type ViewModel struct {
	Query      string
	SortLabel  string
	Cards      []CardView
	Loading    bool
	TotalLabel string

	// EmptyMessage is set only after a successful fetch returned no items.
	EmptyMessage string

	// ErrorMessage is set while the last fetch failed; Cards then hold the
	// last good page, if any.
	ErrorMessage string
	ErrorDetail  string

	Pages       []int
	CurrentPage int
	TotalPages  int
}

// newPrinter returns the printer used for grouped totals.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

// BuildViewModel derives the screen contents from state.
func BuildViewModel(state domain.SessionState, p *message.Printer) ViewModel {
	if p == nil {
		p = newPrinter()
	}

	criteria := state.Criteria()
	vm := ViewModel{
		Query:       criteria.Text(),
		SortLabel:   criteria.Sort().Label(),
		Loading:     state.IsLoading(),
		CurrentPage: state.CurrentPage(),
		TotalPages:  state.TotalPages(),
	}

	result, ok := state.LastResult()
	if ok {
		vm.Cards = make([]CardView, 0, result.Len())
		for _, item := range result.Items() {
			vm.Cards = append(vm.Cards, CardView{
				Name:        item.Name(),
				FullName:    item.FullName(),
				Owner:       item.OwnerLogin(),
				Description: item.Description(),
				Language:    item.Language(),
				Stars:       domain.FormatCount(item.StarCount()),
				URL:         item.HTMLURL(),

				NoDescription: !item.HasDescription(),
				NoLanguage:    !item.HasLanguage(),
			})
		}
		vm.TotalLabel = p.Sprintf("%d %s", result.TotalCount(),
			components.Pluralize(result.TotalCount(), "repository", "repositories"))
		vm.Pages = domain.PlanPages(state.CurrentPage(), result.TotalPages(), domain.PaginationWindow)
	}

	switch state.Status() {
	case domain.StatusSuccess:
		if ok && result.IsEmpty() {
			vm.EmptyMessage = domain.EmptyResultMessage
		}
	case domain.StatusError:
		vm.ErrorMessage = domain.FetchErrorMessage
		if err := state.LastError(); err != nil {
			vm.ErrorDetail = describeError(err)
		}
	}

	return vm
}

// describeError returns a short, user-facing reason for a failed fetch.
func describeError(err error) string {
	switch domain.ErrorKindOf(err) {
	case domain.ErrorKindTransport:
		return "network unreachable"
	case domain.ErrorKindMalformedPayload:
		return "unexpected response"
	case domain.ErrorKindResponse:
		if isRateLimited(err) {
			return "rate limited, try again shortly"
		}
		return err.Error()
	default:
		return err.Error()
	}
}
