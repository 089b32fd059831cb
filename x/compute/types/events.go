package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	EventTypeComputeCompleted = "compute_completed"

	AttributeKeyIterations = "iterations"
	AttributeKeyFinalHash  = "final_hash"
)

// NewComputeCompletedEvent records a finished benchmark run.
func NewComputeCompletedEvent(iterations uint64, finalHash common.Hash) sdk.Event {
	return sdk.NewEvent(
		EventTypeComputeCompleted,
		sdk.NewAttribute(AttributeKeyIterations, strconv.FormatUint(iterations, 10)),
		sdk.NewAttribute(AttributeKeyFinalHash, finalHash.Hex()),
	)
}
