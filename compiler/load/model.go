// Package load reads data-model descriptions from YAML.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// PropertyType is the type of a view property.
type PropertyType string

// Property types.
const (
	TypeText      PropertyType = "text"
	TypeBoolean   PropertyType = "boolean"
	TypeInt32     PropertyType = "int32"
	TypeInt64     PropertyType = "int64"
	TypeFloat32   PropertyType = "float32"
	TypeFloat64   PropertyType = "float64"
	TypeTimestamp PropertyType = "timestamp"
	TypeDate      PropertyType = "date"
	TypeJSON      PropertyType = "json"
	// TypeDirect is a direct relation to a node of the target view.
	TypeDirect PropertyType = "direct"
	// TypeEdge is a relation through edges of EdgeType.
	TypeEdge PropertyType = "edge"
)

var propertyTypes = map[PropertyType]bool{
	TypeText: true, TypeBoolean: true, TypeInt32: true, TypeInt64: true,
	TypeFloat32: true, TypeFloat64: true, TypeTimestamp: true, TypeDate: true,
	TypeJSON: true, TypeDirect: true, TypeEdge: true,
}

// Directions of edge properties.
const (
	Outwards = "outwards"
	Inwards  = "inwards"
)

// Model is a data model: a versioned set of views in one space.
type Model struct {
	Space      string `yaml:"space"`
	ExternalID string `yaml:"externalId"`
	Version    string `yaml:"version"`
	// TypeSpace holds the node and edge types of the model. Defaults to
	// Space.
	TypeSpace   string  `yaml:"typeSpace,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Views       []*View `yaml:"views"`
}

// View describes one view of the model.
type View struct {
	ExternalID string `yaml:"externalId"`
	// Space and Version default to the model's.
	Space       string      `yaml:"space,omitempty"`
	Version     string      `yaml:"version,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Properties  []*Property `yaml:"properties"`
}

// Property describes a property or relation of a view.
type Property struct {
	Name        string       `yaml:"name"`
	Type        PropertyType `yaml:"type"`
	List        bool         `yaml:"list,omitempty"`
	Nullable    bool         `yaml:"nullable,omitempty"`
	Description string       `yaml:"description,omitempty"`
	// Target is the external ID of the related view for direct and edge
	// properties.
	Target string `yaml:"target,omitempty"`
	// EdgeType is the external ID of the edge type; defaults to
	// "<View>.<name>".
	EdgeType string `yaml:"edgeType,omitempty"`
	// Direction of the edges, "outwards" (default) or "inwards".
	Direction string `yaml:"direction,omitempty"`
}

// IsRelation reports whether the property relates to another view.
func (p *Property) IsRelation() bool {
	return p.Type == TypeDirect || p.Type == TypeEdge
}

// View returns the view with the given external ID.
func (m *Model) View(externalID string) (*View, bool) {
	for _, v := range m.Views {
		if v.ExternalID == externalID {
			return v, true
		}
	}
	return nil, false
}

var identifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Load reads and validates the model file at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a model. Unknown keys are rejected.
func Parse(data []byte) (*Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	m := &Model{}
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	m.defaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) defaults() {
	if m.TypeSpace == "" {
		m.TypeSpace = m.Space
	}
	for _, v := range m.Views {
		if v.Space == "" {
			v.Space = m.Space
		}
		if v.Version == "" {
			v.Version = m.Version
		}
		for _, p := range v.Properties {
			if p.Type != TypeEdge {
				continue
			}
			if p.EdgeType == "" {
				p.EdgeType = v.ExternalID + "." + p.Name
			}
			if p.Direction == "" {
				p.Direction = Outwards
			}
		}
	}
}

// Validate checks names, types and relation targets, and returns all
// problems found.
func (m *Model) Validate() error {
	var errs []error
	if m.Space == "" {
		errs = append(errs, errors.New("model space is required"))
	}
	if !identifier.MatchString(m.ExternalID) {
		errs = append(errs, fmt.Errorf("invalid model externalId %q", m.ExternalID))
	}
	if m.Version == "" {
		errs = append(errs, errors.New("model version is required"))
	}
	if len(m.Views) == 0 {
		errs = append(errs, errors.New("model has no views"))
	}
	views := make(map[string]bool, len(m.Views))
	for _, v := range m.Views {
		if !identifier.MatchString(v.ExternalID) {
			errs = append(errs, fmt.Errorf("invalid view externalId %q", v.ExternalID))
			continue
		}
		if views[v.ExternalID] {
			errs = append(errs, fmt.Errorf("duplicate view %q", v.ExternalID))
		}
		views[v.ExternalID] = true
	}
	for _, v := range m.Views {
		props := make(map[string]bool, len(v.Properties))
		for _, p := range v.Properties {
			if err := v.validateProperty(p, views); err != nil {
				errs = append(errs, err)
			}
			if props[p.Name] {
				errs = append(errs, fmt.Errorf("view %s: duplicate property %q", v.ExternalID, p.Name))
			}
			props[p.Name] = true
		}
	}
	return errors.Join(errs...)
}

func (v *View) validateProperty(p *Property, views map[string]bool) error {
	switch {
	case !identifier.MatchString(p.Name):
		return fmt.Errorf("view %s: invalid property name %q", v.ExternalID, p.Name)
	case !propertyTypes[p.Type]:
		return fmt.Errorf("view %s: property %s has unknown type %q", v.ExternalID, p.Name, p.Type)
	case p.IsRelation() && p.Target == "":
		return fmt.Errorf("view %s: relation %s has no target", v.ExternalID, p.Name)
	case p.IsRelation() && !views[p.Target]:
		return fmt.Errorf("view %s: relation %s targets unknown view %q", v.ExternalID, p.Name, p.Target)
	case !p.IsRelation() && p.Target != "":
		return fmt.Errorf("view %s: property %s of type %s cannot have a target", v.ExternalID, p.Name, p.Type)
	case p.Type == TypeEdge && p.Direction != Outwards && p.Direction != Inwards:
		return fmt.Errorf("view %s: edge %s has invalid direction %q", v.ExternalID, p.Name, p.Direction)
	}
	return nil
}
