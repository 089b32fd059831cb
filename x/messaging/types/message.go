package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Message is one entry of the append-only message log. Entries are immutable
// once stored; they are only materialized as standalone values for genesis
// import/export.
type Message struct {
	ID      uint64 `json:"id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

func NewMessage(id uint64, sender common.Address, content string) Message {
	return Message{
		ID:      id,
		Sender:  sender.Hex(),
		Content: content,
	}
}

// SenderAddress returns the submitting account as an address value.
func (m Message) SenderAddress() common.Address {
	return common.HexToAddress(m.Sender)
}
