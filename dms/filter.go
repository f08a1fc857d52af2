package dms

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Filter is a predicate over instances in the platform's filter language.
// Filters marshal to the wire format and render a readable form with String.
type Filter interface {
	json.Marshaler
	fmt.Stringer
	filter()
}

// NodeProperty returns the reference to a built-in node property such as
// "externalId", "space" or "type".
func NodeProperty(name string) []string {
	return []string{"node", name}
}

// EdgeProperty returns the reference to a built-in edge property such as
// "externalId", "type", "startNode" or "endNode".
func EdgeProperty(name string) []string {
	return []string{"edge", name}
}

func path(property []string) string {
	return strings.Join(property, ".")
}

func literal(v any) string {
	switch v := v.(type) {
	case NodeID:
		return fmt.Sprintf("%q", v.String())
	case *NodeID:
		if v == nil {
			return "null"
		}
		return fmt.Sprintf("%q", v.String())
	case fmt.Stringer:
		return fmt.Sprintf("%q", v.String())
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func literals(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = literal(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// EqualsFilter matches instances whose property equals a value.
type EqualsFilter struct {
	Property []string
	Value    any
}

// Equals returns a filter matching property == value.
func Equals(property []string, value any) *EqualsFilter {
	return &EqualsFilter{Property: property, Value: value}
}

func (*EqualsFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *EqualsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"equals": map[string]any{"property": f.Property, "value": f.Value}})
}

func (f *EqualsFilter) String() string {
	return path(f.Property) + " == " + literal(f.Value)
}

// InFilter matches instances whose property is one of the values.
type InFilter struct {
	Property []string
	Values   []any
}

// In returns a filter matching property in values.
func In[T any](property []string, values ...T) *InFilter {
	vs := make([]any, len(values))
	for i := range values {
		vs[i] = values[i]
	}
	return &InFilter{Property: property, Values: vs}
}

func (*InFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *InFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"in": map[string]any{"property": f.Property, "values": f.Values}})
}

func (f *InFilter) String() string {
	return path(f.Property) + " in " + literals(f.Values)
}

// RangeFilter matches instances whose property falls in a range. Nil bounds
// are open.
type RangeFilter struct {
	Property []string
	GT       any
	GTE      any
	LT       any
	LTE      any
}

// Range returns an empty range filter on property. Bounds are set with the
// chained methods.
func Range(property []string) *RangeFilter {
	return &RangeFilter{Property: property}
}

// Gt sets the exclusive lower bound.
func (f *RangeFilter) Gt(v any) *RangeFilter { f.GT = v; return f }

// Gte sets the inclusive lower bound.
func (f *RangeFilter) Gte(v any) *RangeFilter { f.GTE = v; return f }

// Lt sets the exclusive upper bound.
func (f *RangeFilter) Lt(v any) *RangeFilter { f.LT = v; return f }

// Lte sets the inclusive upper bound.
func (f *RangeFilter) Lte(v any) *RangeFilter { f.LTE = v; return f }

func (*RangeFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *RangeFilter) MarshalJSON() ([]byte, error) {
	body := map[string]any{"property": f.Property}
	for k, v := range map[string]any{"gt": f.GT, "gte": f.GTE, "lt": f.LT, "lte": f.LTE} {
		if v != nil {
			body[k] = v
		}
	}
	return json.Marshal(map[string]any{"range": body})
}

func (f *RangeFilter) String() string {
	var parts []string
	p := path(f.Property)
	if f.GT != nil {
		parts = append(parts, p+" > "+literal(f.GT))
	}
	if f.GTE != nil {
		parts = append(parts, p+" >= "+literal(f.GTE))
	}
	if f.LT != nil {
		parts = append(parts, p+" < "+literal(f.LT))
	}
	if f.LTE != nil {
		parts = append(parts, p+" <= "+literal(f.LTE))
	}
	if len(parts) == 0 {
		return p + " in range()"
	}
	return strings.Join(parts, " && ")
}

// PrefixFilter matches instances whose text property starts with a value.
type PrefixFilter struct {
	Property []string
	Value    any
}

// Prefix returns a filter matching property values starting with value.
func Prefix(property []string, value any) *PrefixFilter {
	return &PrefixFilter{Property: property, Value: value}
}

func (*PrefixFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *PrefixFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"prefix": map[string]any{"property": f.Property, "value": f.Value}})
}

func (f *PrefixFilter) String() string {
	return "hasPrefix(" + path(f.Property) + ", " + literal(f.Value) + ")"
}

// ExistsFilter matches instances where the property is set.
type ExistsFilter struct {
	Property []string
}

// Exists returns a filter matching instances with property set.
func Exists(property []string) *ExistsFilter {
	return &ExistsFilter{Property: property}
}

func (*ExistsFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *ExistsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"exists": map[string]any{"property": f.Property}})
}

func (f *ExistsFilter) String() string {
	return "exists(" + path(f.Property) + ")"
}

// ContainsFilter matches list properties containing any or all values.
type ContainsFilter struct {
	Property []string
	Values   []any
	All      bool
}

// ContainsAny returns a filter matching lists holding at least one value.
func ContainsAny[T any](property []string, values ...T) *ContainsFilter {
	return &ContainsFilter{Property: property, Values: In(property, values...).Values}
}

// ContainsAll returns a filter matching lists holding every value.
func ContainsAll[T any](property []string, values ...T) *ContainsFilter {
	return &ContainsFilter{Property: property, Values: In(property, values...).Values, All: true}
}

func (*ContainsFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *ContainsFilter) MarshalJSON() ([]byte, error) {
	key := "containsAny"
	if f.All {
		key = "containsAll"
	}
	return json.Marshal(map[string]any{key: map[string]any{"property": f.Property, "values": f.Values}})
}

func (f *ContainsFilter) String() string {
	fn := "containsAny"
	if f.All {
		fn = "containsAll"
	}
	return fn + "(" + path(f.Property) + ", " + literals(f.Values) + ")"
}

// BoolFilter combines filters with "and" or "or".
type BoolFilter struct {
	Op      string // "and" or "or"
	Filters []Filter
}

func combine(op string, filters []Filter) Filter {
	var fs []Filter
	for _, f := range filters {
		if f != nil && !isNilFilter(f) {
			fs = append(fs, f)
		}
	}
	switch len(fs) {
	case 0:
		return nil
	case 1:
		return fs[0]
	}
	return &BoolFilter{Op: op, Filters: fs}
}

// isNilFilter reports typed nil pointers stored in the interface.
func isNilFilter(f Filter) bool {
	switch f := f.(type) {
	case *EqualsFilter:
		return f == nil
	case *InFilter:
		return f == nil
	case *RangeFilter:
		return f == nil
	case *PrefixFilter:
		return f == nil
	case *ExistsFilter:
		return f == nil
	case *ContainsFilter:
		return f == nil
	case *BoolFilter:
		return f == nil
	case *NotFilter:
		return f == nil
	case *HasDataFilter:
		return f == nil
	case *NestedFilter:
		return f == nil
	}
	return false
}

// And returns the conjunction of the non-nil filters. It returns nil when
// no filter is given and the filter itself when only one is.
func And(filters ...Filter) Filter {
	return combine("and", filters)
}

// Or returns the disjunction of the non-nil filters, collapsing like And.
func Or(filters ...Filter) Filter {
	return combine("or", filters)
}

func (*BoolFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *BoolFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{f.Op: f.Filters})
}

func (f *BoolFilter) String() string {
	sep := " && "
	if f.Op == "or" {
		sep = " || "
	}
	parts := make([]string, len(f.Filters))
	for i, sub := range f.Filters {
		parts[i] = sub.String()
	}
	if f.Op == "or" {
		return "(" + strings.Join(parts, sep) + ")"
	}
	return strings.Join(parts, sep)
}

// NotFilter negates a filter.
type NotFilter struct {
	Filter Filter
}

// Not returns the negation of f, or nil when f is nil.
func Not(f Filter) Filter {
	if f == nil || isNilFilter(f) {
		return nil
	}
	return &NotFilter{Filter: f}
}

func (*NotFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *NotFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"not": f.Filter})
}

func (f *NotFilter) String() string {
	return "!(" + f.Filter.String() + ")"
}

// HasDataFilter matches instances with data in every given view.
type HasDataFilter struct {
	Views []ViewID
}

// HasData returns a filter matching instances with data in the views.
func HasData(views ...ViewID) *HasDataFilter {
	return &HasDataFilter{Views: views}
}

func (*HasDataFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *HasDataFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"hasData": f.Views})
}

func (f *HasDataFilter) String() string {
	parts := make([]string, len(f.Views))
	for i, v := range f.Views {
		parts[i] = v.String()
	}
	return "hasData(" + strings.Join(parts, ", ") + ")"
}

// NestedFilter applies a filter to the node a direct relation points at.
type NestedFilter struct {
	Scope  []string
	Filter Filter
}

// Nested returns a filter applying f to the target of the direct relation
// property scope.
func Nested(scope []string, f Filter) *NestedFilter {
	return &NestedFilter{Scope: scope, Filter: f}
}

func (*NestedFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (f *NestedFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"nested": map[string]any{"scope": f.Scope, "filter": f.Filter}})
}

func (f *NestedFilter) String() string {
	return path(f.Scope) + "->(" + f.Filter.String() + ")"
}

// MatchAllFilter matches every instance.
type MatchAllFilter struct{}

// MatchAll returns a filter matching every instance.
func MatchAll() MatchAllFilter {
	return MatchAllFilter{}
}

func (MatchAllFilter) filter() {}

// MarshalJSON implements json.Marshaler.
func (MatchAllFilter) MarshalJSON() ([]byte, error) {
	return []byte(`{"matchAll":{}}`), nil
}

func (MatchAllFilter) String() string {
	return "true"
}

// SortDirection orders results.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// Sort orders results by a property.
type Sort struct {
	Property   []string      `json:"property"`
	Direction  SortDirection `json:"direction,omitempty"`
	NullsFirst bool          `json:"nullsFirst,omitempty"`
}

// SortBy returns an ascending sort on property.
func SortBy(property []string) Sort {
	return Sort{Property: property, Direction: Ascending}
}

// Desc returns the sort with descending direction.
func (s Sort) Desc() Sort {
	s.Direction = Descending
	return s
}

func (s Sort) String() string {
	dir := s.Direction
	if dir == "" {
		dir = Ascending
	}
	return path(s.Property) + " " + string(dir)
}
