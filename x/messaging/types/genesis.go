package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type GenesisState struct {
	// Messages is the full message log, ordered by id. Ids must be dense,
	// starting at 0: the log is positional, not a sparse table.
	Messages []Message `json:"messages"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

func (g *GenesisState) Validate() error {
	for i, msg := range g.Messages {
		if msg.ID != uint64(i) {
			return fmt.Errorf("non-contiguous message id at position %d: got %d", i, msg.ID)
		}
		if msg.Content == "" {
			return fmt.Errorf("empty content for message %d", msg.ID)
		}
		if !common.IsHexAddress(msg.Sender) {
			return fmt.Errorf("invalid sender %q for message %d", msg.Sender, msg.ID)
		}
	}
	return nil
}
