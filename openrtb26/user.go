package openrtb26

import "encoding/json"

// User contains information known or derived about the human user of the device.
type User struct {
	ID       string `json:"id,omitempty"`
	BuyerUID string `json:"buyeruid,omitempty"`

	// Deprecated.
	Yob    *int64 `json:"yob,omitempty"`
	Gender string `json:"gender,omitempty"`

	Keywords string `json:"keywords,omitempty"`

	// GDPR consent string when regs.gdpr is 1.
	Consent string `json:"consent,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}

// Regs contains any legal, governmental, or industry regulations that apply to the request.
type Regs struct {
	COPPA     *int8           `json:"coppa,omitempty"`
	GDPR      *int8           `json:"gdpr,omitempty"`
	USPrivacy string          `json:"us_privacy,omitempty"`
	GPP       string          `json:"gpp,omitempty"`
	GPPSID    []int8          `json:"gpp_sid,omitempty"`
	Ext       json.RawMessage `json:"ext,omitempty"`
}

// Source describes the nature and behavior of the entity that is the source of the bid request
// upstream from the exchange.
type Source struct {
	// Entity responsible for the final impression sale decision, where 0 = exchange, 1 = upstream source.
	FD *int8 `json:"fd,omitempty"`

	// Transaction ID that must be common across all participants in this bid request.
	TID string `json:"tid,omitempty"`

	PChain string       `json:"pchain,omitempty"`
	SChain *SupplyChain `json:"schain,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}

// SupplyChain is composed primarily of a set of nodes where each node represents a specific
// entity that participates in the transacting of inventory.
type SupplyChain struct {
	// Flag indicating whether the chain contains all nodes leading back to the source of the inventory.
	Complete *int8 `json:"complete,omitempty"`

	Nodes []SupplyChainNode `json:"nodes,omitempty"`
	Ver   string            `json:"ver,omitempty"`
	Ext   json.RawMessage   `json:"ext,omitempty"`
}

// SupplyChainNode defines the identity of an entity participating in the supply chain.
type SupplyChainNode struct {
	ASI    string          `json:"asi,omitempty"`
	SID    string          `json:"sid,omitempty"`
	RID    string          `json:"rid,omitempty"`
	Name   string          `json:"name,omitempty"`
	Domain string          `json:"domain,omitempty"`
	HP     *int8           `json:"hp,omitempty"`
	Ext    json.RawMessage `json:"ext,omitempty"`
}
