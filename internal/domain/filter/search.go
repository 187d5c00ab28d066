package filter

import (
	"fmt"
	"strings"
)

// AllStatuses is the status filter sentinel that disables status matching.
const AllStatuses = "all"

// Criteria describes what a user wants to see in a list.
type Criteria struct {
	SearchText   string `form:"q" json:"searchText"`
	StatusFilter string `form:"status" json:"statusFilter"`
}

// Field reads one named string field from a record.
type Field[T any] func(T) string

// Kind configures searching for one record type.
type Kind[T any] struct {
	Name       string
	Fields     map[string]Field[T]
	Searchable []string
	// Status returns the stored or derived status used by the status filter.
	Status     func(record T, thresholds Thresholds) string
	Aliases    map[string]string
	Thresholds Thresholds
}

// StatusOf returns the status the filter compares against.
func (k Kind[T]) StatusOf(record T) string {
	if k.Status == nil {
		return ""
	}
	return k.Status(record, k.Thresholds)
}

// Matches reports whether a single record satisfies the criteria.
func (k Kind[T]) Matches(record T, c Criteria) bool {
	needle, status := normalize(c)
	return k.matches(record, needle, status)
}

func (k Kind[T]) matches(record T, needle, status string) bool {
	return k.matchesText(record, needle) && k.matchesStatus(record, status)
}

func (k Kind[T]) matchesText(record T, needle string) bool {
	if needle == "" {
		return true
	}
	for _, name := range k.Searchable {
		read, ok := k.Fields[name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(read(record)), needle) {
			return true
		}
	}
	return false
}

func (k Kind[T]) matchesStatus(record T, status string) bool {
	if status == AllStatuses {
		return true
	}
	if alias, ok := k.Aliases[status]; ok {
		status = statusKey(alias)
	}
	return statusKey(k.StatusOf(record)) == status
}

// WithProfile returns a copy of the kind with the profile applied.
func (k Kind[T]) WithProfile(p Profile) (Kind[T], error) {
	out := k
	if len(p.SearchableFields) > 0 {
		fields := make([]string, 0, len(p.SearchableFields))
		for _, name := range p.SearchableFields {
			if _, ok := k.Fields[name]; !ok {
				return k, fmt.Errorf("%s: unknown searchable field %q", k.Name, name)
			}
			fields = append(fields, name)
		}
		out.Searchable = fields
	}
	if p.StatusThresholds != nil {
		if err := p.StatusThresholds.Validate(); err != nil {
			return k, fmt.Errorf("%s: %w", k.Name, err)
		}
		out.Thresholds = *p.StatusThresholds
	}
	return out, nil
}

// Search returns the records matching c in their original order. The input
// is never modified and the result is never nil.
func Search[T any](records []T, k Kind[T], c Criteria) []T {
	needle, status := normalize(c)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if k.matches(r, needle, status) {
			out = append(out, r)
		}
	}
	return out
}

func normalize(c Criteria) (needle, status string) {
	needle = strings.ToLower(c.SearchText)
	status = statusKey(c.StatusFilter)
	if status == "" {
		status = AllStatuses
	}
	return needle, status
}

// statusKey folds "In Transit", "in-transit" and "in_transit" together.
func statusKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}
