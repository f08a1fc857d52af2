package core

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PageInfo is the pagination block of GraphQL list fields.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

// GraphQLList is the {"items": [...]} wrapper of GraphQL list fields.
type GraphQLList[T any] struct {
	Items    []T       `json:"items"`
	PageInfo *PageInfo `json:"pageInfo,omitempty"`
}

// GraphQLAggregate is one group of an aggregate query. Maps are keyed by
// property name.
type GraphQLAggregate struct {
	Group map[string]any     `json:"group,omitempty"`
	Count map[string]float64 `json:"count,omitempty"`
	Sum   map[string]float64 `json:"sum,omitempty"`
	Avg   map[string]float64 `json:"avg,omitempty"`
	Min   map[string]float64 `json:"min,omitempty"`
	Max   map[string]float64 `json:"max,omitempty"`
}

// GraphQLRegistry maps __typename to the decoder of the generated GraphQL
// type.
type GraphQLRegistry map[string]func(json.RawMessage) (any, error)

// RegisterGraphQL registers T under typename. Items decode into *T.
func RegisterGraphQL[T any](r GraphQLRegistry, typename string) {
	r[typename] = func(raw json.RawMessage) (any, error) {
		v := new(T)
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// ParseGraphQL decodes the data of a GraphQL response. Items of list*,
// search* and get*ById fields are decoded by __typename; aggregate* fields
// yield *GraphQLAggregate values. Root fields are read in name order.
func ParseGraphQL(data json.RawMessage, registry GraphQLRegistry) ([]any, error) {
	var roots map[string]json.RawMessage
	if err := json.Unmarshal(data, &roots); err != nil {
		return nil, fmt.Errorf("core: graphql data: %w", err)
	}
	var out []any
	for _, field := range slices.Sorted(maps.Keys(roots)) {
		raw := roots[field]
		if isNull(raw) {
			continue
		}
		switch {
		case strings.HasPrefix(field, "aggregate"):
			var list GraphQLList[*GraphQLAggregate]
			if err := json.Unmarshal(raw, &list); err != nil {
				return nil, fmt.Errorf("core: graphql field %q: %w", field, err)
			}
			for _, a := range list.Items {
				out = append(out, a)
			}
		case strings.HasPrefix(field, "list"), strings.HasPrefix(field, "search"),
			strings.HasPrefix(field, "get") && strings.HasSuffix(field, "ById"):
			items, err := graphQLItems(raw)
			if err != nil {
				return nil, fmt.Errorf("core: graphql field %q: %w", field, err)
			}
			for _, item := range items {
				v, err := registry.decode(item)
				if err != nil {
					return nil, fmt.Errorf("core: graphql field %q: %w", field, err)
				}
				out = append(out, v)
			}
		default:
			return nil, fmt.Errorf("core: unsupported graphql field %q", field)
		}
	}
	return out, nil
}

// graphQLItems returns the items of a list wrapper, or the value itself
// when it is a single object.
func graphQLItems(raw json.RawMessage) ([]json.RawMessage, error) {
	var wrapper struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}
	if wrapper.Items != nil {
		return wrapper.Items, nil
	}
	return []json.RawMessage{raw}, nil
}

func (r GraphQLRegistry) decode(raw json.RawMessage) (any, error) {
	var head struct {
		Typename string `json:"__typename"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}
	if head.Typename == "" {
		return nil, fmt.Errorf("item has no __typename")
	}
	dec, ok := r[head.Typename]
	if !ok {
		return nil, fmt.Errorf("unknown __typename %q", head.Typename)
	}
	return dec(raw)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
