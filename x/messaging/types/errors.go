package types

import errorsmod "cosmossdk.io/errors"

var (
	// ErrEmptyMessage is returned when a submission carries no content.
	ErrEmptyMessage = errorsmod.Register(ModuleName, 2, "message content is empty")
	// ErrMessageNotFound is returned when an id at or beyond the current
	// message count is referenced.
	ErrMessageNotFound = errorsmod.Register(ModuleName, 3, "message not found")
	// ErrBridgeFailed is returned when the settlement relay rejects or fails a
	// forward. The relay's diagnostic is carried in the wrapped message.
	ErrBridgeFailed = errorsmod.Register(ModuleName, 4, "settlement relay call failed")
)
