package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// EventTypeMessageSent is emitted on every successful submission.
	EventTypeMessageSent = "message_sent"
	// EventTypeMessageBridged is emitted on every successful forward to the
	// settlement layer.
	EventTypeMessageBridged = "message_bridged"

	AttributeKeyID      = "id"
	AttributeKeySender  = "sender"
	AttributeKeyContent = "content"
	AttributeKeyTicket  = "ticket"
)

func NewMessageSentEvent(id uint64, sender common.Address, content string) sdk.Event {
	return sdk.NewEvent(
		EventTypeMessageSent,
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(AttributeKeySender, sender.Hex()),
		sdk.NewAttribute(AttributeKeyContent, content),
	)
}

func NewMessageBridgedEvent(id uint64, ticket common.Hash) sdk.Event {
	return sdk.NewEvent(
		EventTypeMessageBridged,
		sdk.NewAttribute(AttributeKeyID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(AttributeKeyTicket, ticket.Hex()),
	)
}
