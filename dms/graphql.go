package dms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
)

// GraphQLService posts queries to the GraphQL endpoint of a data model.
type GraphQLService struct {
	client *Client
}

// graphQLPath returns the project-relative endpoint of a data model.
func graphQLPath(dm DataModelID) string {
	return fmt.Sprintf("userapis/spaces/%s/datamodels/%s/versions/%s/graphql", dm.Space, dm.ExternalID, dm.Version)
}

// ValidateQuery checks the syntax of a GraphQL document.
func ValidateQuery(query string) (*ast.QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: "query", Input: query})
	if err != nil {
		return nil, fmt.Errorf("dms: invalid graphql query: %w", err)
	}
	if len(doc.Operations) == 0 {
		return nil, fmt.Errorf("dms: graphql document has no operation")
	}
	return doc, nil
}

// Query validates query locally, runs it against the data model and returns
// the "data" member of the response. Errors reported by the endpoint are
// returned as a *GraphQLError.
func (s *GraphQLService) Query(ctx context.Context, dm DataModelID, query string, variables map[string]any) (json.RawMessage, error) {
	doc, err := ValidateQuery(query)
	if err != nil {
		return nil, err
	}
	params := &graphql.RawParams{Query: query, Variables: variables}
	if len(doc.Operations) == 1 {
		params.OperationName = doc.Operations[0].Name
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("dms: marshal graphql request: %w", err)
	}
	data, err := s.client.do(ctx, http.MethodPost, graphQLPath(dm), body)
	if err != nil {
		return nil, err
	}
	var resp graphql.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("dms: decode graphql response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return resp.Data, &GraphQLError{Errors: resp.Errors}
	}
	return resp.Data, nil
}

// NewGraphQLError returns a GraphQLError with a single message, for
// failures detected while decoding responses.
func NewGraphQLError(format string, args ...any) *GraphQLError {
	return &GraphQLError{Errors: gqlerror.List{gqlerror.Errorf(format, args...)}}
}
