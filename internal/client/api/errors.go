package api

import "errors"

var (
	// ErrUnavailable covers transport failures and non-parseable responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrAuthFailed means the login call succeeded at the transport level
	// but the response carried no access token.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRemoteRejected means the ERP signalled a logical failure: a non-2xx
	// status or an application error code at or above RejectionCodeThreshold.
	// The server-provided message, when present, is wrapped around it.
	ErrRemoteRejected = errors.New("rejected by ERP")
)

// RejectionCodeThreshold is the lowest application-level Code value in a
// response envelope that counts as a failure.
const RejectionCodeThreshold = 900
