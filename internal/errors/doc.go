// Package errors provides the structured error type shared by the army list
// importer, the shared list store and the HTTP handlers.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFoundf("unit %s not found", unitID).
//	    WithMeta("unit_id", unitID)
//
// Wrapping keeps the original code so a NotFound from the store is still a
// NotFound when it reaches the handler:
//
//	if err := s.store.DeleteModel(unitID, modelID); err != nil {
//	    return errors.Wrap(err, "failed to delete model")
//	}
//
// Handlers translate codes with Code.HTTPStatus.
//
// The transformation engine itself (parser, normalizer, aggregator,
// formatter) never returns errors: missing rule text, malformed ratings and
// unresolvable identities are absorbed and rendered visibly in the output.
// Only the edges (Army Forge fetch, store lookups, persistence, config) use
// this package.
//
// Constructor dependencies are checked with ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors
