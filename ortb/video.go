package ortb

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

// VideoParams carries the caller's video values. DeviceType is the hint used for default player
// dimensions; BuildImp sets it from the assembled device.
type VideoParams struct {
	MIMEs       []string                      `json:"mimes,omitempty"`
	MinDuration *int64                        `json:"minduration,omitempty"`
	MaxDuration *int64                        `json:"maxduration,omitempty"`
	RqdDurs     []int64                       `json:"rqddurs,omitempty"`
	Protocols   []int64                       `json:"protocols,omitempty"`
	W           *int64                        `json:"w,omitempty"`
	H           *int64                        `json:"h,omitempty"`
	Linearity   *int64                        `json:"linearity,omitempty"`
	Plcmt       *int64                        `json:"plcmt,omitempty"`

	DeviceType adcom1.DeviceType `json:"-"`
	Overrides  json.RawMessage   `json:"-"`
}

func (p *VideoParams) UnmarshalJSON(data []byte) error {
	type videoParams VideoParams
	if err := json.Unmarshal(data, (*videoParams)(p)); err != nil {
		return err
	}
	p.Overrides = cloneSlice(data)
	return nil
}

func (VideoParams) MediaType() MediaType {
	return MediaTypeVideo
}

func (p VideoParams) apply(imp *openrtb26.Imp, deviceType adcom1.DeviceType) error {
	if p.DeviceType == 0 {
		p.DeviceType = deviceType
	}
	video, err := BuildVideo(p)
	if err != nil {
		return err
	}
	imp.Video = video
	return nil
}

// BuildVideo builds an in-stream video object. Duration bounds are defaulted only when rqddurs
// is absent or empty so defaulting never introduces a mutual exclusion.
func BuildVideo(params VideoParams) (*openrtb26.Video, error) {
	size := videoDimensions(params.DeviceType)

	video := &openrtb26.Video{
		MIMEs:     sliceOrDefault(params.MIMEs, defaultVideoMIMEs),
		Protocols: sliceOrDefault(params.Protocols, defaultVideoProtocols),
		W:         ptrutil.OrDefault(params.W, size.w),
		H:         ptrutil.OrDefault(params.H, size.h),
		Linearity: ptrutil.OrDefault(params.Linearity, DefaultVideoLinearity),
		Plcmt:     ptrutil.OrDefault(params.Plcmt, DefaultVideoPlcmt),
		RqdDurs:   cloneSlice(params.RqdDurs),
	}

	if len(params.RqdDurs) == 0 {
		video.MinDuration, video.MaxDuration = durationBounds(params.MinDuration, params.MaxDuration)
	} else {
		video.MinDuration = ptrutil.Clone(params.MinDuration)
		video.MaxDuration = ptrutil.Clone(params.MaxDuration)
	}

	return jsonutil.MergePatch(video, params.Overrides)
}

// durationBounds fills whichever bound the caller left out. A filled bound never conflicts with
// the caller's other bound.
func durationBounds(minDuration, maxDuration *int64) (*int64, *int64) {
	minDefault := DefaultMinDuration
	maxDefault := DefaultMaxDuration
	if maxDuration != nil && *maxDuration < minDefault {
		minDefault = *maxDuration
	}
	if minDuration != nil && *minDuration > maxDefault {
		maxDefault = *minDuration
	}
	return ptrutil.OrDefault(minDuration, minDefault), ptrutil.OrDefault(maxDuration, maxDefault)
}

func sliceOrDefault[T any](s []T, def []T) []T {
	if s != nil {
		return cloneSlice(s)
	}
	return cloneSlice(def)
}
