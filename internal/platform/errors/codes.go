// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Game errors
	CodeGameEmptyPlayerName Code = "GAME_EMPTY_PLAYER_NAME"
	CodeGameInvalidDealer   Code = "GAME_INVALID_DEALER"
	CodeGameFinished        Code = "GAME_FINISHED"
	CodeGameOutcomeConflict Code = "GAME_OUTCOME_CONFLICT"

	// Round errors
	CodeRoundInvalidMode    Code = "ROUND_INVALID_MODE"
	CodeRoundInvalidBid     Code = "ROUND_INVALID_BID"
	CodeRoundInvalidBidTeam Code = "ROUND_INVALID_BID_TEAM"
	CodeRoundNegativePoints Code = "ROUND_NEGATIVE_POINTS"
	CodeRoundNotCurrent     Code = "ROUND_NOT_CURRENT"
	CodeRoundAlreadyExists  Code = "ROUND_ALREADY_EXISTS"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Transport errors
	CodeBadRequest Code = "BAD_REQUEST"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeGameEmptyPlayerName,
		CodeGameInvalidDealer,
		CodeRoundInvalidMode,
		CodeRoundInvalidBid,
		CodeRoundInvalidBidTeam,
		CodeRoundNegativePoints,
		CodeRoundNotCurrent,
		CodeBadRequest:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeGameFinished,
		CodeGameOutcomeConflict:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeRoundAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
