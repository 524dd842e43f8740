package types

// PairwiseIdentity binds an identity (DID) to one peer.
type PairwiseIdentity struct {
	DID    string `json:"did"`
	PeerID string `json:"peer_id"`
}

// ID returns the composite identifier DID + "-" + PeerID.
func (p PairwiseIdentity) ID() string { return p.DID + "-" + p.PeerID }
