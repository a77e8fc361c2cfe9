package openrtb26

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
	"github.com/prebid/openrtb/v20/openrtb2"
)

// Banner represents the most general type of impression: display ads, rich media or iframes.
type Banner struct {
	// Array of format objects representing the banner sizes permitted.
	Format []Format `json:"format,omitempty"`

	// Exact width and height in device independent pixels.
	W *int64 `json:"w,omitempty"`
	H *int64 `json:"h,omitempty"`

	// Deprecated in favor of Format.
	WMax *int64 `json:"wmax,omitempty"`
	HMax *int64 `json:"hmax,omitempty"`
	WMin *int64 `json:"wmin,omitempty"`
	HMin *int64 `json:"hmin,omitempty"`

	// Blocked banner ad types.
	BType []int64 `json:"btype,omitempty"`

	// Blocked creative attributes.
	BAttr []adcom1.CreativeAttribute `json:"battr,omitempty"`

	// Ad position on screen.
	Pos *int64 `json:"pos,omitempty"`

	MIMEs    []string `json:"mimes,omitempty"`
	TopFrame *int8    `json:"topframe,omitempty"`
	ExpDir   []int64  `json:"expdir,omitempty"`
	API      []int64  `json:"api,omitempty"`

	// Unique identifier for this banner object. Useful for tracking multiple banner objects
	// such as in companion banner arrays.
	ID string `json:"id,omitempty"`

	// Relevant only for Banner objects used with a Video object in an array of companion ads.
	// 0 = concurrent, 1 = end-card.
	VCm *int8 `json:"vcm,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}

// Format represents an allowed size (either an exact size or a flexible ratio) for a banner. A zero
// value in any of its fields carries no meaning, so the shared openrtb2 type serves.
type Format = openrtb2.Format
