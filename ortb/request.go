package ortb

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
	"github.com/prebid/ortb-builder/util/ptrutil"
	"github.com/prebid/ortb-builder/util/uuidutil"
)

// Assemble builds a complete bid request from params. It expects params that passed
// Params.Validate; it does not validate the result.
//
// Without an impression list a single banner impression is built from Width and Height, falling
// back to 300x250.
func Assemble(params Params, ids uuidutil.UUIDGenerator, defaults RequestDefaults) (*openrtb26.BidRequest, error) {
	id, err := ids.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate request id")
	}

	req := &openrtb26.BidRequest{
		ID:      id,
		AT:      ptrutil.OrDefault(params.AT, defaults.AuctionType),
		TMax:    ptrutil.OrDefault(params.TMax, defaults.TMax),
		Cur:     cloneSlice(params.Cur),
		AllImps: ptrutil.OrDefault(params.AllImps, DefaultAllImps),
		Test:    ptrutil.Clone(params.Test),
		BCat:    nonEmpty(params.BCat),
		BAdv:    nonEmpty(params.BAdv),
		BApp:    nonEmpty(params.BApp),
		WSeat:   nonEmpty(params.WSeat),
		BSeat:   nonEmpty(params.BSeat),
	}
	if len(req.Cur) == 0 {
		req.Cur = cloneSlice(defaults.Currency)
	}

	if jsonutil.IsNull(params.App) {
		if req.Site, err = BuildSite(params.Domain, params.Page, params.Site, params.Publisher); err != nil {
			return nil, overrideError("site", err)
		}
	} else {
		if req.App, err = BuildApp(params.Domain, params.App, params.Publisher); err != nil {
			return nil, overrideError("app", err)
		}
	}

	if req.Device, err = BuildDevice(params.Device, params.Geo); err != nil {
		return nil, overrideError("device", err)
	}

	imps := params.Imp
	if len(imps) == 0 {
		imps = []ImpParams{{
			Media: BannerParams{
				W: ptrutil.OrDefault(params.Width, DefaultBannerW),
				H: ptrutil.OrDefault(params.Height, DefaultBannerH),
			},
		}}
	}

	req.Imp = make([]openrtb26.Imp, 0, len(imps))
	for i, impParams := range imps {
		imp, err := BuildImp(impParams, i, deviceTypeHint(req.Device.DeviceType))
		if err != nil {
			return nil, err
		}
		req.Imp = append(req.Imp, *imp)
	}

	if req.User, err = decodeOverride[openrtb26.User](params.User); err != nil {
		return nil, overrideError("user", err)
	}
	if req.Regs, err = decodeOverride[openrtb26.Regs](params.Regs); err != nil {
		return nil, overrideError("regs", err)
	}
	if req.Source, err = decodeOverride[openrtb26.Source](params.Source); err != nil {
		return nil, overrideError("source", err)
	}

	return req, nil
}

// overrideError reports an override document that could not be applied. Overrides come from the
// caller, so this is an input error.
func overrideError(field string, err error) error {
	return &errortypes.BadInput{Message: fmt.Sprintf("%q could not be applied: %v", field, err)}
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return cloneSlice(s)
}
