package ortb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

// Params is the caller input contract for generating a bid request. Domain and Page are required.
// Imp takes precedence over the legacy Width and Height pair. The json.RawMessage fields are nested
// overrides applied on top of the generated objects.
type Params struct {
	Domain string `json:"domain"`
	Page   string `json:"page"`

	// Legacy single banner impression size.
	Width  *int64 `json:"width,omitempty"`
	Height *int64 `json:"height,omitempty"`

	Imp []ImpParams `json:"imp,omitempty"`

	Site      json.RawMessage `json:"site,omitempty"`
	App       json.RawMessage `json:"app,omitempty"`
	Publisher json.RawMessage `json:"publisher,omitempty"`
	Device    json.RawMessage `json:"device,omitempty"`
	Geo       json.RawMessage `json:"geo,omitempty"`
	User      json.RawMessage `json:"user,omitempty"`
	Regs      json.RawMessage `json:"regs,omitempty"`
	Source    json.RawMessage `json:"source,omitempty"`

	AT      *int64   `json:"at,omitempty"`
	TMax    *int64   `json:"tmax,omitempty"`
	Cur     []string `json:"cur,omitempty"`
	AllImps *int8    `json:"allimps,omitempty"`
	Test    *int8    `json:"test,omitempty"`

	BCat  []string `json:"bcat,omitempty"`
	BAdv  []string `json:"badv,omitempty"`
	BApp  []string `json:"bapp,omitempty"`
	WSeat []string `json:"wseat,omitempty"`
	BSeat []string `json:"bseat,omitempty"`
}

// MediaType names the media object carried by an impression.
type MediaType string

const (
	MediaTypeBanner MediaType = "banner"
	MediaTypeVideo  MediaType = "video"
	MediaTypeAudio  MediaType = "audio"
	MediaTypeNative MediaType = "native"
)

var mediaTypes = []MediaType{MediaTypeBanner, MediaTypeVideo, MediaTypeAudio, MediaTypeNative}

// MediaParams is the media variant of an impression. It is implemented only by BannerParams,
// VideoParams, AudioParams and NativeParams, so an impression carries exactly one media type.
type MediaParams interface {
	MediaType() MediaType
	apply(imp *openrtb26.Imp, deviceType adcom1.DeviceType) error
}

// ImpParams describes one impression. Media is decided while decoding: an entry naming zero or
// several media objects decodes with a nil Media and is rejected by Params.Validate.
type ImpParams struct {
	ID          string          `json:"id,omitempty"`
	BidFloor    *float64        `json:"bidfloor,omitempty"`
	BidFloorCur string          `json:"bidfloorcur,omitempty"`
	Secure      *int8           `json:"secure,omitempty"`
	Instl       *int8           `json:"instl,omitempty"`
	TagID       string          `json:"tagid,omitempty"`
	PMP         json.RawMessage `json:"pmp,omitempty"`
	Rwdd        *int8           `json:"rwdd,omitempty"`
	Exp         *int64          `json:"exp,omitempty"`
	Ext         json.RawMessage `json:"ext,omitempty"`

	Media MediaParams `json:"-"`

	mediaKeys []MediaType
	mediaErr  error
}

func (p *ImpParams) UnmarshalJSON(data []byte) error {
	type impParams ImpParams
	if err := json.Unmarshal(data, (*impParams)(p)); err != nil {
		return err
	}

	var media struct {
		Banner json.RawMessage `json:"banner"`
		Video  json.RawMessage `json:"video"`
		Audio  json.RawMessage `json:"audio"`
		Native json.RawMessage `json:"native"`
	}
	if err := json.Unmarshal(data, &media); err != nil {
		return err
	}

	raw := map[MediaType]json.RawMessage{
		MediaTypeBanner: media.Banner,
		MediaTypeVideo:  media.Video,
		MediaTypeAudio:  media.Audio,
		MediaTypeNative: media.Native,
	}

	p.Media = nil
	p.mediaKeys = nil
	p.mediaErr = nil
	for _, mediaType := range mediaTypes {
		if !jsonutil.IsNull(raw[mediaType]) {
			p.mediaKeys = append(p.mediaKeys, mediaType)
		}
	}
	if len(p.mediaKeys) != 1 {
		return nil
	}

	mediaType := p.mediaKeys[0]
	if !jsonutil.IsObject(raw[mediaType]) {
		p.mediaErr = fmt.Errorf("%s must be a JSON object", mediaType)
		return nil
	}

	var err error
	switch mediaType {
	case MediaTypeBanner:
		var banner BannerParams
		err = jsonutil.Unmarshal(raw[mediaType], &banner)
		p.Media = banner
	case MediaTypeVideo:
		var video VideoParams
		err = jsonutil.Unmarshal(raw[mediaType], &video)
		p.Media = video
	case MediaTypeAudio:
		var audio AudioParams
		err = jsonutil.Unmarshal(raw[mediaType], &audio)
		p.Media = audio
	case MediaTypeNative:
		var native NativeParams
		err = jsonutil.Unmarshal(raw[mediaType], &native)
		p.Media = native
	}
	if err != nil {
		p.Media = nil
		p.mediaErr = fmt.Errorf("%s could not be decoded: %v", mediaType, err)
	}
	return nil
}

// Validate runs the input checks. Every returned error is an *errortypes.BadInput and generation
// must not proceed when any is returned.
func (p *Params) Validate() []error {
	var errs []error
	add := func(format string, args ...interface{}) {
		errs = append(errs, &errortypes.BadInput{Message: fmt.Sprintf(format, args...)})
	}

	if p.Domain == "" {
		add(`missing required field: "domain"`)
	} else if !govalidator.IsDNSName(p.Domain) {
		add(`"domain" must be a valid domain name, got %q`, p.Domain)
	}

	if p.Page == "" {
		add(`missing required field: "page"`)
	} else if !govalidator.IsRequestURL(p.Page) {
		add(`"page" must be an absolute URL, got %q`, p.Page)
	}

	if (p.Width == nil) != (p.Height == nil) {
		add(`"width" and "height" must be provided together`)
	} else if p.Width != nil && (*p.Width <= 0 || *p.Height <= 0) {
		add(`"width" and "height" must be positive numbers`)
	}

	for i := range p.Imp {
		imp := &p.Imp[i]
		switch {
		case imp.mediaErr != nil:
			add("imp[%d].%v", i, imp.mediaErr)
		case len(imp.mediaKeys) > 1:
			add(`imp[%d] must contain exactly one of "banner", "video", "audio" or "native", found %s`, i, quoteMediaTypes(imp.mediaKeys))
		case imp.Media == nil:
			add(`imp[%d] must contain exactly one of "banner", "video", "audio" or "native"`, i)
		}
		if !isObjectOrAbsent(imp.PMP) {
			add(`imp[%d].pmp must be a JSON object`, i)
		}
		if !isObjectOrAbsent(imp.Ext) {
			add(`imp[%d].ext must be a JSON object`, i)
		}
	}

	overrides := []struct {
		name string
		raw  json.RawMessage
	}{
		{"site", p.Site},
		{"app", p.App},
		{"publisher", p.Publisher},
		{"device", p.Device},
		{"geo", p.Geo},
		{"user", p.User},
		{"regs", p.Regs},
		{"source", p.Source},
	}
	for _, o := range overrides {
		if !isObjectOrAbsent(o.raw) {
			add(`%q must be a JSON object`, o.name)
		}
	}

	if !jsonutil.IsNull(p.Site) && !jsonutil.IsNull(p.App) {
		add(`"site" and "app" are mutually exclusive; provide only one`)
	}

	return errs
}

func isObjectOrAbsent(raw json.RawMessage) bool {
	return jsonutil.IsNull(raw) || jsonutil.IsObject(raw)
}

func quoteMediaTypes(types []MediaType) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = strconv.Quote(string(t))
	}
	return strings.Join(quoted, ", ")
}
