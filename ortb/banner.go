package ortb

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

// BannerParams carries the caller's banner values. Overrides is the caller's nested banner
// object, merged over the built banner last.
type BannerParams struct {
	W      *int64             `json:"w,omitempty"`
	H      *int64             `json:"h,omitempty"`
	Format []openrtb26.Format `json:"format,omitempty"`

	Overrides json.RawMessage `json:"-"`
}

func (p *BannerParams) UnmarshalJSON(data []byte) error {
	type bannerParams BannerParams
	if err := json.Unmarshal(data, (*bannerParams)(p)); err != nil {
		return err
	}
	p.Overrides = cloneSlice(data)
	return nil
}

func (BannerParams) MediaType() MediaType {
	return MediaTypeBanner
}

func (p BannerParams) apply(imp *openrtb26.Imp, _ adcom1.DeviceType) error {
	banner, err := BuildBanner(p)
	if err != nil {
		return err
	}
	imp.Banner = banner
	return nil
}

// BuildBanner builds a banner. A w/h pair given without a format list expands into a format list
// holding that size followed by its IAB companion size, when one is known.
func BuildBanner(params BannerParams) (*openrtb26.Banner, error) {
	banner := &openrtb26.Banner{
		W:      ptrutil.Clone(params.W),
		H:      ptrutil.Clone(params.H),
		Format: cloneFormats(params.Format),
	}

	if banner.Format == nil {
		banner.Format = expandFormat(banner.W, banner.H)
	}

	return jsonutil.MergePatch(banner, params.Overrides)
}

func expandFormat(w, h *int64) []openrtb26.Format {
	if w == nil || h == nil || *w <= 0 || *h <= 0 {
		return nil
	}

	format := []openrtb26.Format{{W: *w, H: *h}}
	if companion, ok := iabCompanionSizes[dimensions{*w, *h}]; ok {
		format = append(format, openrtb26.Format{W: companion.w, H: companion.h})
	}
	return format
}
