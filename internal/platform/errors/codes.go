// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Clock errors
	CodeClockCannotAdvance Code = "CLOCK_CANNOT_ADVANCE"

	// Engine errors
	CodeEngineGateUnmet     Code = "ENGINE_GATE_UNMET"
	CodeEngineRunCapReached Code = "ENGINE_RUN_CAP_REACHED"
	CodeEngineRunnerMissing Code = "ENGINE_RUNNER_MISSING"

	// Day-loop errors
	CodeLoopZoneUnset      Code = "LOOP_ZONE_UNSET"
	CodeLoopDaysOutOfRange Code = "LOOP_DAYS_OUT_OF_RANGE"
	CodeLoopBusy           Code = "LOOP_BUSY"

	// Travel errors
	CodeTravelZoneNotFound    Code = "TRAVEL_ZONE_NOT_FOUND"
	CodeTravelNoCrossingPoint Code = "TRAVEL_NO_CROSSING_POINT"

	// Dice/mechanics errors
	CodeDiceInvalidExpression Code = "DICE_INVALID_EXPRESSION"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Generic validation errors
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)
