package dms

import (
	"encoding/json"
	"fmt"
)

// InstanceType discriminates nodes and edges on the wire.
type InstanceType string

// Instance types.
const (
	NodeType InstanceType = "node"
	EdgeType InstanceType = "edge"
)

// ViewID identifies a versioned view.
type ViewID struct {
	Space      string `json:"space"`
	ExternalID string `json:"externalId"`
	Version    string `json:"version"`
}

// MarshalJSON adds the "type" discriminator expected by the platform.
func (v ViewID) MarshalJSON() ([]byte, error) {
	type view ViewID
	return json.Marshal(struct {
		Type string `json:"type"`
		view
	}{Type: "view", view: view(v)})
}

// Key returns the key of the view inside a space's property map.
func (v ViewID) Key() string {
	return v.ExternalID + "/" + v.Version
}

// Property returns the reference to a property of the view, as used by
// filters and sorts.
func (v ViewID) Property(name string) []string {
	return []string{v.Space, v.Key(), name}
}

// String returns the view ID in the form space:externalId/version.
func (v ViewID) String() string {
	return v.Space + ":" + v.Key()
}

// DataModelID identifies a versioned data model.
type DataModelID struct {
	Space      string `json:"space"`
	ExternalID string `json:"externalId"`
	Version    string `json:"version"`
}

// String returns the data model ID in the form space:externalId/version.
func (d DataModelID) String() string {
	return d.Space + ":" + d.ExternalID + "/" + d.Version
}

// NodeID identifies a node. It is also the wire shape of direct relation
// values and edge types.
type NodeID struct {
	Space      string `json:"space"`
	ExternalID string `json:"externalId"`
}

// String returns the node ID in the form space:externalId.
func (n NodeID) String() string {
	return n.Space + ":" + n.ExternalID
}

// IsZero reports whether the ID is empty.
func (n NodeID) IsZero() bool {
	return n.Space == "" && n.ExternalID == ""
}

// Instance returns the node ID as an instance ID.
func (n NodeID) Instance() InstanceID {
	return InstanceID{InstanceType: NodeType, Space: n.Space, ExternalID: n.ExternalID}
}

// EdgeID identifies an edge.
type EdgeID struct {
	Space      string `json:"space"`
	ExternalID string `json:"externalId"`
}

// String returns the edge ID in the form space:externalId.
func (e EdgeID) String() string {
	return e.Space + ":" + e.ExternalID
}

// Instance returns the edge ID as an instance ID.
func (e EdgeID) Instance() InstanceID {
	return InstanceID{InstanceType: EdgeType, Space: e.Space, ExternalID: e.ExternalID}
}

// InstanceID identifies a node or an edge.
type InstanceID struct {
	InstanceType InstanceType `json:"instanceType"`
	Space        string       `json:"space"`
	ExternalID   string       `json:"externalId"`
}

// String returns the instance ID in the form type:space:externalId.
func (i InstanceID) String() string {
	return fmt.Sprintf("%s:%s:%s", i.InstanceType, i.Space, i.ExternalID)
}
