package gen

import (
	"os"
	"path/filepath"
)

var (
	// FeatureGraphQL generates GraphQL data classes, the typename registry
	// and Client.GraphQLQuery.
	FeatureGraphQL = Feature{
		Name:        "graphql",
		Stage:       Stable,
		Default:     true,
		Description: "Generates GraphQL types and parsing of GraphQL query responses",
		cleanup: func(g *Graph) error {
			for _, t := range g.Nodes {
				if err := remove(g.Config.Target, t.FileName()+"_graphql.go"); err != nil {
					return err
				}
			}
			return remove(g.Config.Target, "graphql.go")
		},
	}

	// FeatureEdgeAPI generates one API per edge-backed property for listing
	// the edges themselves.
	FeatureEdgeAPI = Feature{
		Name:        "edgeapi",
		Stage:       Stable,
		Default:     true,
		Description: "Generates edge APIs listing the edges of edge-backed properties",
		cleanup: func(g *Graph) error {
			for _, t := range g.Nodes {
				for _, e := range t.EdgeProperties() {
					if err := remove(g.Config.Target, e.FileName()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	// FeatureWhere generates typed filter predicates in the view packages.
	FeatureWhere = Feature{
		Name:        "where",
		Stage:       Beta,
		Default:     true,
		Description: "Generates typed filter predicates per property (StartTimeRange, NameEQ, etc.)",
		cleanup: func(g *Graph) error {
			for _, t := range g.Nodes {
				if err := remove(filepath.Join(g.Config.Target, t.PackageDir()), "where.go"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureGraphQL,
		FeatureEdgeAPI,
		FeatureWhere,
	}
)

// FeatureByName returns the feature-flag with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development.
	Experimental

	// Alpha features are complete but their generated API may change.
	Alpha

	// Beta features are documented and not expected to change.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// A Feature of the dmgen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup removes the files of a previous run when the feature is
	// disabled.
	cleanup func(*Graph) error
}

// cleanupDisabled removes the output of disabled features.
func (g *Graph) cleanupDisabled() error {
	for _, f := range AllFeatures {
		if f.cleanup == nil || g.Config.HasFeature(f.Name) {
			continue
		}
		if err := f.cleanup(g); err != nil {
			return NewGenerationError("cleanup", "", f.Name, err)
		}
	}
	return nil
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}
