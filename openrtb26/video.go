package openrtb26

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
)

// Video represents an in-stream video impression.
//
// Duration bounds (MinDuration, MaxDuration) and RqdDurs are mutually exclusive.
type Video struct {
	// Content MIME types supported.
	MIMEs []string `json:"mimes,omitempty"`

	MinDuration *int64 `json:"minduration,omitempty"`
	MaxDuration *int64 `json:"maxduration,omitempty"`

	// Indicates the start delay in seconds for pre-roll, mid-roll, or post-roll ad placements.
	StartDelay *int64 `json:"startdelay,omitempty"`

	// Maximum number of ads that may be served into a dynamic video ad pod.
	MaxSeq *int64 `json:"maxseq,omitempty"`

	// Total amount of time in seconds that advertisers may fill for a dynamic video ad pod.
	PodDur *int64 `json:"poddur,omitempty"`

	// Protocols, Protocol and PodDedupe accept exchange specific values of 500 and above.
	Protocols []int64 `json:"protocols,omitempty"`

	// Deprecated in favor of Protocols.
	Protocol *int64 `json:"protocol,omitempty"`

	W *int64 `json:"w,omitempty"`
	H *int64 `json:"h,omitempty"`

	PodID   string  `json:"podid,omitempty"`
	PodSeq  *int64  `json:"podseq,omitempty"`
	RqdDurs []int64 `json:"rqddurs,omitempty"`

	// Deprecated in favor of Plcmt.
	Placement *int64 `json:"placement,omitempty"`

	// Video placement type: 1 = instream, 2 = accompanying content, 3 = interstitial,
	// 4 = no content/standalone.
	Plcmt *int64 `json:"plcmt,omitempty"`

	// 1 = linear/in-stream, 2 = non-linear/overlay.
	Linearity *int64 `json:"linearity,omitempty"`

	Skip      *int8  `json:"skip,omitempty"`
	SkipMin   *int64 `json:"skipmin,omitempty"`
	SkipAfter *int64 `json:"skipafter,omitempty"`

	// Deprecated in favor of PodID and SlotInPod.
	Sequence *int64 `json:"sequence,omitempty"`

	SlotInPod    *int64   `json:"slotinpod,omitempty"`
	MinCPMPerSec *float64 `json:"mincpmpersec,omitempty"`

	BAttr []adcom1.CreativeAttribute `json:"battr,omitempty"`

	MaxExtended    *int64  `json:"maxextended,omitempty"`
	MinBitRate     *int64  `json:"minbitrate,omitempty"`
	MaxBitRate     *int64  `json:"maxbitrate,omitempty"`
	BoxingAllowed  *int8   `json:"boxingallowed,omitempty"`
	PlaybackMethod []int64 `json:"playbackmethod,omitempty"`
	PlaybackEnd    *int64  `json:"playbackend,omitempty"`
	Delivery       []int64 `json:"delivery,omitempty"`
	Pos            *int64  `json:"pos,omitempty"`

	CompanionAd   []Banner `json:"companionad,omitempty"`
	API           []int64  `json:"api,omitempty"`
	CompanionType []int64  `json:"companiontype,omitempty"`
	PodDedupe     []int64  `json:"poddedupe,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}
