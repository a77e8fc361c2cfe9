package ortb

import (
	"fmt"
	"strconv"

	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

// BuildImp builds the impression at position index (zero based). The id defaults to the one
// based position. deviceType is passed to media builders that size by device.
func BuildImp(params ImpParams, index int, deviceType adcom1.DeviceType) (*openrtb26.Imp, error) {
	if params.Media == nil {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf(`imp[%d] must contain exactly one of "banner", "video", "audio" or "native"`, index)}
	}

	imp := &openrtb26.Imp{
		ID:          params.ID,
		BidFloor:    ptrutil.Clone(params.BidFloor),
		BidFloorCur: params.BidFloorCur,
		Secure:      ptrutil.OrDefault(params.Secure, DefaultSecure),
		Instl:       ptrutil.Clone(params.Instl),
		TagID:       params.TagID,
		Rwdd:        ptrutil.Clone(params.Rwdd),
		Exp:         ptrutil.Clone(params.Exp),
		Ext:         cloneSlice(params.Ext),
	}
	if imp.ID == "" {
		imp.ID = strconv.Itoa(index + 1)
	}
	if imp.BidFloorCur == "" {
		imp.BidFloorCur = DefaultBidFloorCur
	}

	pmp, err := decodeOverride[openrtb26.PMP](params.PMP)
	if err != nil {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf("imp[%d].pmp could not be applied: %v", index, err)}
	}
	imp.PMP = pmp

	if err := params.Media.apply(imp, deviceType); err != nil {
		return nil, &errortypes.BadInput{Message: fmt.Sprintf("imp[%d].%s could not be applied: %v", index, params.Media.MediaType(), err)}
	}

	return imp, nil
}
