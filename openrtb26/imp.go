package openrtb26

import "encoding/json"

// Imp describes an ad placement or impression being auctioned. A single bid request can include
// multiple Imp objects. Exactly one of Banner, Video, Audio or Native is expected.
type Imp struct {
	// A unique identifier for this impression within the context of the bid request.
	ID string `json:"id"`

	Banner *Banner `json:"banner,omitempty"`
	Video  *Video  `json:"video,omitempty"`
	Audio  *Audio  `json:"audio,omitempty"`
	Native *Native `json:"native,omitempty"`

	// A Pmp object containing any private marketplace deals in effect for this impression.
	PMP *PMP `json:"pmp,omitempty"`

	DisplayManager    string `json:"displaymanager,omitempty"`
	DisplayManagerVer string `json:"displaymanagerver,omitempty"`

	// 1 = the ad is interstitial or full screen, 0 = not interstitial.
	Instl *int8 `json:"instl,omitempty"`

	TagID string `json:"tagid,omitempty"`

	// Minimum bid for this impression expressed in CPM.
	BidFloor *float64 `json:"bidfloor,omitempty"`

	// Currency specified using ISO-4217 alpha codes.
	BidFloorCur string `json:"bidfloorcur,omitempty"`

	// Indicates the type of browser opened upon clicking the creative in an app,
	// where 0 = embedded, 1 = native.
	ClickBrowser *int8 `json:"clickbrowser,omitempty"`

	// Flag to indicate if the impression requires secure HTTPS URL creative assets and markup,
	// where 0 = non-secure, 1 = secure.
	Secure *int8 `json:"secure,omitempty"`

	IframeBuster []string `json:"iframebuster,omitempty"`

	// Indicates whether the user receives a reward for viewing the creative.
	Rwdd *int8 `json:"rwdd,omitempty"`

	// Indicates if server-side ad insertion is used.
	SSAI *int8 `json:"ssai,omitempty"`

	// Advisory as to the number of seconds that may elapse between the auction and the actual impression.
	Exp *int64 `json:"exp,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}
