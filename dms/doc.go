// Package dms is the wire client for the platform's data modeling service.
//
// It covers the instance endpoints the generated clients forward to:
// apply, delete, retrieve, list, search, aggregate, query and the data model
// GraphQL endpoint. Requests are rate limited, retried on 429 and 5xx
// responses, authenticated with a bearer token, and optionally answered
// from a dmgen.Cache.
//
//	client, err := dms.NewClient(
//	    dms.WithBaseURL("https://api.example.com"),
//	    dms.WithProject("power-ops"),
//	    dms.WithTokenSource(dms.StaticToken(token)),
//	)
//	res, err := client.Instances.List(ctx, &dms.ListRequest{
//	    InstanceType: dms.NodeType,
//	    Sources:      []dms.ViewID{view},
//	    Limit:        25,
//	})
package dms
