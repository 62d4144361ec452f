// Package errors provides the coded error type used across rpg-arena.
//
// Every layer returns *Error values so that the transport can map them to
// gRPC status codes without guessing:
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("cost cannot be negative").
//	    WithMeta("cost", cost)
//
// Wrapping keeps the original code unless a new one is requested:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist caster")
//	}
//
// Inputs with several problems are collected with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateNonNegative("strength", input.Strength, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Layer guidelines:
//   - Repositories return NotFound / AlreadyExists and wrap storage failures.
//   - Orchestrators validate inputs (InvalidArgument) and wrap repository
//     errors with business context.
//   - Handlers convert with ToGRPCError; clients convert back with
//     FromGRPCError.
package errors
