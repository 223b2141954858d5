// Package errors provides the structured error type used across geoquest.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata:
//
//	err := errors.NotFound("region not found").WithMeta("region_id", id)
//
// Wrapping keeps the code of the wrapped error so callers higher up can still
// branch on it:
//
//	if err := repo.Add(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record capture")
//	}
//
// Dataset shape failures use CodeInvalidDataset and are the only errors the
// battle engine treats as fatal:
//
//	if errors.IsInvalidDataset(err) {
//	    // refuse to start any encounter
//	}
//
// Config validation goes through ValidationBuilder, and transports convert
// errors with ToGRPCError / FromGRPCError.
package errors
