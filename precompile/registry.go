package precompile

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"

	"github.com/omega-labs/omega-chain/bridge"
	"github.com/omega-labs/omega-chain/config"
	computepc "github.com/omega-labs/omega-chain/precompile/compute"
	messagingpc "github.com/omega-labs/omega-chain/precompile/messaging"
	computekeeper "github.com/omega-labs/omega-chain/x/compute/keeper"
	messagingkeeper "github.com/omega-labs/omega-chain/x/messaging/keeper"
)

// Precompile is the registration surface shared by all stateful contracts:
// a fixed address and a gas schedule. Execution entrypoints differ per
// contract and are dispatched by the host chain, not the registry.
type Precompile interface {
	Address() common.Address
	RequiredGas(input []byte) uint64
}

// Registry holds the stateful contracts by address.
type Registry struct {
	contracts map[common.Address]Precompile
}

// NewRegistry builds the default contract set: the message registry and the
// compute benchmark. Registration fails if two contracts claim the same
// address.
func NewRegistry(mk *messagingkeeper.Keeper, ck *computekeeper.Keeper, cfg config.OmegaConfig) (*Registry, error) {
	r := &Registry{contracts: make(map[common.Address]Precompile)}

	gw := bridge.NewGateway(mk)
	if err := r.register(messagingpc.NewContract(mk, gw, cfg)); err != nil {
		return nil, err
	}
	if err := r.register(computepc.NewContract(ck, cfg)); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) register(p Precompile) error {
	addr := p.Address()
	if _, taken := r.contracts[addr]; taken {
		return eris.Errorf("contract address %s is already registered", addr.Hex())
	}
	r.contracts[addr] = p
	return nil
}

// Lookup returns the contract registered at addr, if any.
func (r *Registry) Lookup(addr common.Address) (Precompile, bool) {
	p, ok := r.contracts[addr]
	return p, ok
}

// Addresses returns every registered contract address.
func (r *Registry) Addresses() []common.Address {
	addrs := make([]common.Address, 0, len(r.contracts))
	for addr := range r.contracts {
		addrs = append(addrs, addr)
	}
	return addrs
}
