// Package core is the runtime shared by generated data modeling clients.
//
// Generated packages build on four pieces:
//
//   - Model, WriteModel and GraphQLModel, the bases of the read, write and
//     GraphQL variant of every view type.
//   - NodeAPI, which implements apply, delete, retrieve, list, iterate,
//     search, aggregate and histogram for one view.
//   - EdgeAPI, which lists the edges of one edge type.
//   - QueryStep, QueryBuilder and QueryAPI, which page through a multi-step
//     graph query and unpack the result sets into linked objects.
package core
