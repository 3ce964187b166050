package domain

import "strings"

// Network is one of the fixed set of supported deposit networks. All
// EVM networks resolve to the same shared EVM address but keep distinct
// method tags, so credits are tracked per network.
type Network string

const (
	NetworkEthereum Network = "eth"
	NetworkBSC      Network = "bsc"
	NetworkPolygon  Network = "polygon"
	NetworkArbitrum Network = "arbitrum"
	NetworkBase     Network = "base"
	NetworkBitcoin  Network = "btc"
	NetworkSolana   Network = "sol"
	NetworkTron     Network = "trx"
)

// NetworkInfo maps a network to its chain family, the symbol of its
// native asset, and the canonical tag written into ledger entry Method.
type NetworkInfo struct {
	Network Network
	Family  ChainFamily
	Symbol  string
	Method  string
}

var networks = map[Network]NetworkInfo{
	NetworkEthereum: {NetworkEthereum, FamilyEVM, "ETH", "ethereum"},
	NetworkBSC:      {NetworkBSC, FamilyEVM, "BNB", "bsc"},
	NetworkPolygon:  {NetworkPolygon, FamilyEVM, "POL", "polygon"},
	NetworkArbitrum: {NetworkArbitrum, FamilyEVM, "ETH", "arbitrum"},
	NetworkBase:     {NetworkBase, FamilyEVM, "ETH", "base"},
	NetworkBitcoin:  {NetworkBitcoin, FamilyBitcoin, "BTC", "bitcoin"},
	NetworkSolana:   {NetworkSolana, FamilySolana, "SOL", "solana"},
	NetworkTron:     {NetworkTron, FamilyTron, "TRX", "tron"},
}

// ParseNetwork resolves a client-supplied network id. The second return
// is false for unknown ids.
func ParseNetwork(s string) (NetworkInfo, bool) {
	info, ok := networks[Network(strings.ToLower(strings.TrimSpace(s)))]
	return info, ok
}

// Networks lists every supported network in a stable order.
func Networks() []NetworkInfo {
	ordered := []Network{
		NetworkEthereum, NetworkBSC, NetworkPolygon, NetworkArbitrum,
		NetworkBase, NetworkBitcoin, NetworkSolana, NetworkTron,
	}
	out := make([]NetworkInfo, 0, len(ordered))
	for _, n := range ordered {
		out = append(out, networks[n])
	}
	return out
}
