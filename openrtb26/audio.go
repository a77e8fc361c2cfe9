package openrtb26

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
)

// Audio represents an audio type impression. Many of the fields are non-essential for minimally
// viable transactions, but are included to offer fine control when needed.
type Audio struct {
	MIMEs []string `json:"mimes,omitempty"`

	MinDuration *int64 `json:"minduration,omitempty"`
	MaxDuration *int64 `json:"maxduration,omitempty"`

	// Pod fields. Mutually exclusive with the simple duration bounds.
	PodDur  *int64  `json:"poddur,omitempty"`
	RqdDurs []int64 `json:"rqddurs,omitempty"`
	MaxSeq  *int64  `json:"maxseq,omitempty"`

	Protocols  []int64 `json:"protocols,omitempty"`
	StartDelay *int64  `json:"startdelay,omitempty"`

	PodID  string `json:"podid,omitempty"`
	PodSeq *int64 `json:"podseq,omitempty"`

	// Deprecated in favor of PodID and SlotInPod.
	Sequence *int64 `json:"sequence,omitempty"`

	SlotInPod    *int64   `json:"slotinpod,omitempty"`
	MinCPMPerSec *float64 `json:"mincpmpersec,omitempty"`

	BAttr       []adcom1.CreativeAttribute `json:"battr,omitempty"`
	MaxExtended *int64                     `json:"maxextended,omitempty"`
	MinBitrate  *int64                     `json:"minbitrate,omitempty"`
	MaxBitrate  *int64                     `json:"maxbitrate,omitempty"`
	Delivery    []int64                    `json:"delivery,omitempty"`

	CompanionAd   []Banner `json:"companionad,omitempty"`
	API           []int64  `json:"api,omitempty"`
	CompanionType []int64  `json:"companiontype,omitempty"`

	// Type of audio feed: 1 = music service, 2 = FM/AM broadcast, 3 = podcast.
	Feed *int64 `json:"feed,omitempty"`

	// Indicates if the ad is stitched with audio content or delivered independently.
	Stitched *int8 `json:"stitched,omitempty"`

	// Volume normalization mode.
	NVol *int64 `json:"nvol,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}
