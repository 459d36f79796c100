// Package errors provides the structured error type used across rpg-arena.
//
// Errors carry a Code, a user-facing Message, an optional Cause and metadata.
// Codes map onto gRPC status codes and HTTP status codes so both transports
// report the same thing.
//
// Only setup and lookup problems are errors. Things that happen inside a
// battle (a tired combatant, a spent skill, acting after the fight is over)
// are narrative outcomes and never reach this package.
//
// # Usage
//
//	return errors.NotFoundf("battle %s not found", battleID)
//
//	if err := repo.Save(ctx, record); err != nil {
//	    return errors.Wrap(err, "failed to save battle record")
//	}
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// Layers:
//   - Engine: FailedPrecondition for setup contract violations
//   - Repositories: NotFound, InvalidArgument, wrapped storage failures
//   - Orchestrators: InvalidArgument for bad input, wrap everything else
//   - Handlers: ToGRPCError or Code.HTTPStatus at the boundary
package errors
