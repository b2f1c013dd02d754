// Package errors carries structured service errors from the repositories up to
// the gRPC boundary.
//
// An Error has a Code, a human readable Message, an optional Cause and free-form
// Meta. Repositories return NotFound or InvalidArgument; orchestrators add
// business context with Wrap (which keeps the code) or WrapWithCode; handlers
// hand every error to ToGRPCError on the way out:
//
//	cfg, err := o.configRepo.Get(ctx, playerID)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load avatar for %s", playerID)
//	}
//
// Input checks collect every problem at once through a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateEnum("action", input.Action, []string{"feed", "pet", "play"}, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
package errors
