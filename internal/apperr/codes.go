package apperr

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Fleet validation errors
	CodeFleetShipCount     Code = "FLEET_SHIP_COUNT"
	CodeFleetSizeSet       Code = "FLEET_SIZE_SET"
	CodeFleetCellCount     Code = "FLEET_CELL_COUNT"
	CodeFleetOutOfBounds   Code = "FLEET_OUT_OF_BOUNDS"
	CodeFleetOverlap       Code = "FLEET_OVERLAP"
	CodeFleetNotStraight   Code = "FLEET_NOT_STRAIGHT"
	CodeFleetNotContiguous Code = "FLEET_NOT_CONTIGUOUS"

	// Move errors
	CodeMatchNotActive      Code = "MATCH_NOT_ACTIVE"
	CodeNotYourTurn         Code = "NOT_YOUR_TURN"
	CodeCellAlreadyTargeted Code = "CELL_ALREADY_TARGETED"

	// Lookup errors
	CodeMatchNotFound Code = "MATCH_NOT_FOUND"
	CodeFleetNotFound Code = "FLEET_NOT_FOUND"

	// State conflicts
	CodeMatchNotJoinable Code = "MATCH_NOT_JOINABLE"
	CodeMatchSelfJoin    Code = "MATCH_SELF_JOIN"

	// Access errors
	CodeNotParticipant Code = "NOT_PARTICIPANT"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures and illegal moves; the caller
	// may correct the request and retry.
	case CodeFleetShipCount,
		CodeFleetSizeSet,
		CodeFleetCellCount,
		CodeFleetOutOfBounds,
		CodeFleetOverlap,
		CodeFleetNotStraight,
		CodeFleetNotContiguous,
		CodeMatchNotActive,
		CodeNotYourTurn,
		CodeCellAlreadyTargeted:
		return http.StatusBadRequest

	// Not found - the record doesn't exist.
	case CodeMatchNotFound,
		CodeFleetNotFound:
		return http.StatusNotFound

	// Conflict - match state disallows the operation; the caller
	// should refresh and reassess.
	case CodeMatchNotJoinable,
		CodeMatchSelfJoin:
		return http.StatusConflict

	case CodeNotParticipant:
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
