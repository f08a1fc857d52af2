package gen

import (
	"fmt"
	"sort"

	"github.com/powerops/dmgen/compiler/load"
)

// Graph holds the views of one data model.
type Graph struct {
	*Config
	Space       string
	ExternalID  string
	Version     string
	TypeSpace   string
	Description string
	// Nodes are the views in declaration order.
	Nodes []*Type
}

// NewGraph builds the graph of a loaded data model.
func NewGraph(c *Config, m *load.Model) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if m == nil {
		return nil, NewSchemaError("", "", "missing data model", nil)
	}
	if err := m.Validate(); err != nil {
		return nil, NewSchemaError(m.ExternalID, "", "", err)
	}
	g := &Graph{
		Config:      c,
		Space:       m.Space,
		ExternalID:  m.ExternalID,
		Version:     m.Version,
		TypeSpace:   m.TypeSpace,
		Description: m.Description,
	}
	if g.TypeSpace == "" {
		g.TypeSpace = g.Space
	}
	names := make(map[string]string)
	for _, v := range m.Views {
		t := &Type{
			Name:        pascal(v.ExternalID),
			Space:       v.Space,
			ExternalID:  v.ExternalID,
			Version:     v.Version,
			Description: v.Description,
			view:        v,
		}
		if other, ok := names[t.PackageDir()]; ok {
			return nil, NewSchemaError(v.ExternalID, "", fmt.Sprintf("package name %q collides with view %s", t.PackageDir(), other), nil)
		}
		names[t.PackageDir()] = v.ExternalID
		g.Nodes = append(g.Nodes, t)
	}
	for _, t := range g.Nodes {
		if err := g.resolve(t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// resolve adds the fields and edges of t.
func (g *Graph) resolve(t *Type) error {
	seen := make(map[string]string)
	for _, p := range t.view.Properties {
		sf := structField(p.Name)
		if other, ok := seen[sf]; ok {
			return NewSchemaError(t.Name, p.Name, fmt.Sprintf("Go name %s collides with property %s", sf, other), nil)
		}
		seen[sf] = p.Name
		var target *Type
		if p.IsRelation() {
			var ok bool
			if target, ok = g.typeOf(p.Target); !ok {
				return NewEdgeError(t.Name, p.Target, p.Name, "target view not found", nil)
			}
		}
		switch p.Type {
		case load.TypeEdge:
			t.Edges = append(t.Edges, &Edge{
				Name:        p.Name,
				StructField: sf,
				Owner:       t,
				Type:        target,
				Unique:      !p.List,
				EdgeType:    p.EdgeType,
				Inverse:     p.Direction == load.Inwards,
				Description: p.Description,
				Index:       len(t.Edges),
			})
		default:
			f := &Field{
				Name:        p.Name,
				StructField: sf,
				Type:        p.Type,
				List:        p.List,
				Nullable:    p.Nullable,
				Description: p.Description,
			}
			if target != nil {
				f.Edge = &Edge{
					Name:        p.Name,
					StructField: sf,
					Owner:       t,
					Type:        target,
					Direct:      true,
					Field:       f,
					Unique:      !p.List,
					Description: p.Description,
					Index:       len(t.Edges),
				}
				t.Edges = append(t.Edges, f.Edge)
			}
			t.Fields = append(t.Fields, f)
		}
	}
	return nil
}

func (g *Graph) typeOf(externalID string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.ExternalID == externalID {
			return t, true
		}
	}
	return nil, false
}

// Type returns the view with the given Go name.
func (g *Graph) Type(name string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// SortedNodes returns the views ordered by name.
func (g *Graph) SortedNodes() []*Type {
	nodes := append([]*Type(nil), g.Nodes...)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

// Edges returns every edge-backed relation of the graph.
func (g *Graph) Edges() []*Edge {
	var edges []*Edge
	for _, t := range g.Nodes {
		edges = append(edges, t.EdgeProperties()...)
	}
	return edges
}
