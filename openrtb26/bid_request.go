// Package openrtb26 models the OpenRTB 2.6 bid request object graph.
//
// Optional fields whose zero value carries meaning are pointers, so an absent field and an
// explicitly zero field encode differently. Absent optionals are omitted from the JSON encoding.
package openrtb26

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
)

// BidRequest is the top-level bid request object. It contains a globally unique bid request or
// auction ID, at least one Imp object and exactly one of Site or App.
type BidRequest struct {
	// Unique ID of the bid request, provided by the exchange.
	ID string `json:"id"`

	// Array of Imp objects representing the impressions offered.
	// Encoded as null when nil so that a missing list and an empty list stay distinguishable.
	Imp []Imp `json:"imp"`

	Site   *Site   `json:"site,omitempty"`
	App    *App    `json:"app,omitempty"`
	Device *Device `json:"device,omitempty"`
	User   *User   `json:"user,omitempty"`

	// Indicator of test mode in which auctions are not billable, where 0 = live mode, 1 = test mode.
	Test *int8 `json:"test,omitempty"`

	// Auction type, where 1 = First Price, 2 = Second Price Plus.
	// Exchange-specific auction types can be defined using values 500 and greater.
	AT *int64 `json:"at,omitempty"`

	// Maximum time in milliseconds the exchange allows for bids to be received.
	TMax *int64 `json:"tmax,omitempty"`

	WSeat []string `json:"wseat,omitempty"`
	BSeat []string `json:"bseat,omitempty"`

	// Flag to indicate if the exchange can verify that the impressions offered represent all of
	// the impressions available in context.
	AllImps *int8 `json:"allimps,omitempty"`

	// Array of allowed currencies for bids on this bid request using ISO-4217 alpha codes.
	Cur []string `json:"cur,omitempty"`

	WLang  []string `json:"wlang,omitempty"`
	WLangB []string `json:"wlangb,omitempty"`

	BCat   []string                 `json:"bcat,omitempty"`
	CatTax *adcom1.CategoryTaxonomy `json:"cattax,omitempty"`
	BAdv   []string                 `json:"badv,omitempty"`
	BApp   []string                 `json:"bapp,omitempty"`

	Source *Source `json:"source,omitempty"`
	Regs   *Regs   `json:"regs,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}
