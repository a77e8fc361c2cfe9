package ortb

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

type AudioParams struct {
	MIMEs       []string                      `json:"mimes,omitempty"`
	MinDuration *int64                        `json:"minduration,omitempty"`
	MaxDuration *int64                        `json:"maxduration,omitempty"`
	PodDur      *int64                        `json:"poddur,omitempty"`
	RqdDurs     []int64                       `json:"rqddurs,omitempty"`
	MaxSeq      *int64                        `json:"maxseq,omitempty"`
	Protocols   []int64                       `json:"protocols,omitempty"`

	Overrides json.RawMessage `json:"-"`
}

func (p *AudioParams) UnmarshalJSON(data []byte) error {
	type audioParams AudioParams
	if err := json.Unmarshal(data, (*audioParams)(p)); err != nil {
		return err
	}
	p.Overrides = cloneSlice(data)
	return nil
}

func (AudioParams) MediaType() MediaType {
	return MediaTypeAudio
}

func (p AudioParams) apply(imp *openrtb26.Imp, _ adcom1.DeviceType) error {
	audio, err := BuildAudio(p)
	if err != nil {
		return err
	}
	imp.Audio = audio
	return nil
}

func (p AudioParams) hasPodFields() bool {
	return p.PodDur != nil || len(p.RqdDurs) > 0 || p.MaxSeq != nil
}

// BuildAudio builds an audio object. Simple duration bounds are defaulted only when the caller
// gave no pod field.
func BuildAudio(params AudioParams) (*openrtb26.Audio, error) {
	audio := &openrtb26.Audio{
		MIMEs:     sliceOrDefault(params.MIMEs, defaultAudioMIMEs),
		Protocols: sliceOrDefault(params.Protocols, defaultAudioProtocols),
		PodDur:    ptrutil.Clone(params.PodDur),
		RqdDurs:   cloneSlice(params.RqdDurs),
		MaxSeq:    ptrutil.Clone(params.MaxSeq),
	}

	if params.hasPodFields() {
		audio.MinDuration = ptrutil.Clone(params.MinDuration)
		audio.MaxDuration = ptrutil.Clone(params.MaxDuration)
	} else {
		audio.MinDuration, audio.MaxDuration = durationBounds(params.MinDuration, params.MaxDuration)
	}

	return jsonutil.MergePatch(audio, params.Overrides)
}
