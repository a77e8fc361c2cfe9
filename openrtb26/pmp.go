package openrtb26

import "encoding/json"

// PMP is the private marketplace container for direct deals between buyers and sellers that
// may pertain to this impression.
type PMP struct {
	// 0 = all bids are accepted, 1 = bids are restricted to the deals specified.
	PrivateAuction *int8 `json:"private_auction,omitempty"`

	Deals []Deal `json:"deals,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}

// Deal constitutes a specific deal that was struck a priori between a buyer and a seller.
type Deal struct {
	ID           string          `json:"id"`
	BidFloor     *float64        `json:"bidfloor,omitempty"`
	BidFloorCur  string          `json:"bidfloorcur,omitempty"`
	AT           *int64          `json:"at,omitempty"`
	WSeat        []string        `json:"wseat,omitempty"`
	WADomain     []string        `json:"wadomain,omitempty"`
	Guar         *int8           `json:"guar,omitempty"`
	MinCPMPerSec *float64        `json:"mincpmpersec,omitempty"`
	Ext          json.RawMessage `json:"ext,omitempty"`
}
