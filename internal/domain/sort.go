package domain

import "fmt"

// SortField is the ordering requested from the search endpoint.
type SortField string

const (
	SortStars    SortField = "stars"
	SortWatchers SortField = "watchers"
	SortScore    SortField = "score"
	SortName     SortField = "name"
	SortCreated  SortField = "created_at"
	SortUpdated  SortField = "updated_at"
)

// DefaultSortField is used when a session starts without an explicit sort.
const DefaultSortField = SortCreated

var sortFields = []SortField{
	SortStars,
	SortWatchers,
	SortScore,
	SortName,
	SortCreated,
	SortUpdated,
}

var sortLabels = map[SortField]string{
	SortStars:    "Stars ↑",
	SortWatchers: "Watchers Count ↑",
	SortScore:    "Score ↑",
	SortName:     "Name ↑",
	SortCreated:  "Created ↑",
	SortUpdated:  "Updated ↑",
}

// AllSortFields returns the supported sort fields in display order.
func AllSortFields() []SortField {
	out := make([]SortField, len(sortFields))
	copy(out, sortFields)
	return out
}

// ParseSortField converts a string to a SortField.
func ParseSortField(s string) (SortField, error) {
	for _, f := range sortFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid sort field: %q", s)
}

// IsValid reports whether the sort field is one of the supported values.
func (f SortField) IsValid() bool {
	_, ok := sortLabels[f]
	return ok
}

// Label returns the human readable label shown in the sort picker.
func (f SortField) Label() string {
	if label, ok := sortLabels[f]; ok {
		return label
	}
	return string(f)
}

// String returns the API value of the sort field.
func (f SortField) String() string {
	return string(f)
}

// Index returns the position of the field in AllSortFields, or -1.
func (f SortField) Index() int {
	for i, sf := range sortFields {
		if sf == f {
			return i
		}
	}
	return -1
}

// Next returns the following sort field, wrapping around.
func (f SortField) Next() SortField {
	idx := f.Index()
	return sortFields[(idx+1)%len(sortFields)]
}

// Prev returns the preceding sort field, wrapping around.
func (f SortField) Prev() SortField {
	idx := f.Index()
	if idx <= 0 {
		return sortFields[len(sortFields)-1]
	}
	return sortFields[idx-1]
}
