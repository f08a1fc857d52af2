package gen

import (
	"strings"

	"github.com/powerops/dmgen/compiler/load"
)

// Type is a view of the data model.
type Type struct {
	// Name is the Go name of the view, e.g. "ShopCase".
	Name        string
	Space       string
	ExternalID  string
	Version     string
	Description string
	// Fields holds the stored properties, including direct relations.
	Fields []*Field
	// Edges holds the relations that can be traversed: direct relations
	// and edge-backed properties, in declaration order.
	Edges []*Edge
	view  *load.View
}

// Field is a stored property of a view.
type Field struct {
	// Name is the property identifier, e.g. "startTime".
	Name string
	// StructField is the Go field name, e.g. "StartTime".
	StructField string
	Type        load.PropertyType
	List        bool
	Nullable    bool
	Description string
	// Edge is set for direct relations.
	Edge *Edge
}

// Edge is a relation from a view to nodes of another view.
type Edge struct {
	// Name is the property identifier, e.g. "shopFiles".
	Name string
	// StructField is the Go field name, e.g. "ShopFiles".
	StructField string
	Owner       *Type
	Type        *Type
	// Direct is set for direct relations stored in Field.
	Direct bool
	Field  *Field
	// Unique is set for relations to at most one node.
	Unique bool
	// EdgeType is the external ID of the edge type of edge-backed
	// properties, in the data model's type space.
	EdgeType string
	// Inverse is set for edges pointing at the owner.
	Inverse     bool
	Description string
	// Index is the position of the edge in its owner's Edges.
	Index int
}

// Label returns the name used in errors, e.g. "ShopCase".
func (t *Type) Label() string { return t.Name }

// PackageDir returns the directory of the view package, e.g. "shopcase".
func (t *Type) PackageDir() string { return strings.ToLower(t.Name) }

// FileName returns the base name of the view's files, e.g. "shop_case".
func (t *Type) FileName() string { return snake(t.Name) }

// Receiver returns the receiver name of the view's types.
func (t *Type) Receiver() string { return receiver(t.Name) }

// WriteName returns the name of the write type.
func (t *Type) WriteName() string { return t.Name + "Write" }

// ListName returns the name of the list type.
func (t *Type) ListName() string { return t.Name + "List" }

// GraphQLName returns the name of the GraphQL type.
func (t *Type) GraphQLName() string { return t.Name + "GraphQL" }

// EdgesName returns the name of the struct holding loaded relations.
func (t *Type) EdgesName() string { return t.Name + "Edges" }

// APIName returns the name of the view API.
func (t *Type) APIName() string { return t.Name + "API" }

// QueryName returns the name of the query type.
func (t *Type) QueryName() string { return t.Name + "Query" }

// DecoderName returns the name of the node decoder.
func (t *Type) DecoderName() string { return "decode" + t.Name }

// FieldBy returns the first field matching fn.
func (t *Type) FieldBy(fn func(*Field) bool) (*Field, bool) {
	for _, f := range t.Fields {
		if fn(f) {
			return f, true
		}
	}
	return nil, false
}

// EdgeProperties returns the edge-backed relations.
func (t *Type) EdgeProperties() []*Edge {
	var edges []*Edge
	for _, e := range t.Edges {
		if !e.Direct {
			edges = append(edges, e)
		}
	}
	return edges
}

// HasTime reports whether a field holds timestamps.
func (t *Type) HasTime() bool {
	_, ok := t.FieldBy(func(f *Field) bool { return f.Type == load.TypeTimestamp })
	return ok
}

// RelatedTypes returns the views the type has relations to, without
// duplicates.
func (t *Type) RelatedTypes() []*Type {
	seen := make(map[*Type]bool)
	var related []*Type
	for _, e := range t.Edges {
		if !seen[e.Type] {
			seen[e.Type] = true
			related = append(related, e.Type)
		}
	}
	return related
}

// Const returns the name of the property constant, e.g. "PropertyStartTime".
func (f *Field) Const() string { return "Property" + pascal(f.Name) }

// IsDirect reports whether the field is a direct relation.
func (f *Field) IsDirect() bool { return f.Type == load.TypeDirect }

// IsTime reports whether the field holds timestamps.
func (f *Field) IsTime() bool { return f.Type == load.TypeTimestamp }

// IsJSON reports whether the field holds JSON objects.
func (f *Field) IsJSON() bool { return f.Type == load.TypeJSON }

// IsText reports whether the field holds text.
func (f *Field) IsText() bool { return f.Type == load.TypeText }

// IsNumeric reports whether the field holds numbers.
func (f *Field) IsNumeric() bool {
	switch f.Type {
	case load.TypeInt32, load.TypeInt64, load.TypeFloat32, load.TypeFloat64:
		return true
	}
	return false
}

// Optional reports whether the Go field is a pointer. Lists and JSON
// values use nil instead.
func (f *Field) Optional() bool {
	return f.Nullable && !f.List && !f.IsJSON()
}

// Filterable reports whether typed predicates are generated for the field.
func (f *Field) Filterable() bool {
	return !f.List && !f.IsJSON()
}

// Const returns the name of the edge name constant, e.g. "EdgeShopFiles".
func (e *Edge) Const() string { return "Edge" + pascal(e.Name) }

// TypeVar returns the name of the edge type variable, e.g.
// "EdgeTypeShopFiles".
func (e *Edge) TypeVar() string { return "EdgeType" + pascal(e.Name) }

// IDsField returns the field of the Edges struct holding the related
// node IDs of edge-backed properties, e.g. "ShopFilesIDs".
func (e *Edge) IDsField() string {
	if e.Unique {
		return e.StructField + "ID"
	}
	return e.StructField + "IDs"
}

// APIName returns the name of the edge API, e.g. "ShopCaseShopFilesAPI".
func (e *Edge) APIName() string { return e.Owner.Name + pascal(e.Name) + "API" }

// FileName returns the file of the edge API, e.g. "shop_case_shop_files.go".
func (e *Edge) FileName() string { return e.Owner.FileName() + "_" + snake(pascal(e.Name)) + ".go" }
