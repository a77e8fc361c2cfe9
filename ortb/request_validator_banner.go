package ortb

import (
	"fmt"

	"github.com/prebid/ortb-builder/openrtb26"
)

func isInterstitial(imp *openrtb26.Imp) bool {
	return imp.Instl != nil && *imp.Instl == 1
}

// validateBanner checks a banner at path. The deprecated wmin/wmax/hmin/hmax fields are reported
// by the deprecated field scan rather than here.
func validateBanner(banner *openrtb26.Banner, path string, isInterstitial bool) []error {
	if banner == nil {
		return nil
	}

	var errL []error

	// Dimensions are signed in the object model. Enforce they are not negative.
	if banner.W != nil && *banner.W < 0 {
		errL = append(errL, invalidValue("%s.w must be a positive number", path))
	}
	if banner.H != nil && *banner.H < 0 {
		errL = append(errL, invalidValue("%s.h must be a positive number", path))
	}

	hasRootSize := banner.H != nil && banner.W != nil && *banner.H > 0 && *banner.W > 0
	if !hasRootSize && len(banner.Format) == 0 && !isInterstitial {
		errL = append(errL, invalid(`%s has no sizes. Define "w" and "h", or include "format" elements.`, path))
	}

	for i := range banner.Format {
		if err := validateFormat(&banner.Format[i], path, i); err != nil {
			errL = append(errL, err)
		}
	}

	errL = append(errL, validateEnumList(banner.BType, 1, 4, path+".btype")...)
	errL = append(errL, validateEnumList(banner.BAttr, 1, 17, path+".battr")...)
	errL = append(errL, validateRange(banner.Pos, 0, 7, path+".pos")...)
	errL = append(errL, validateFlag(banner.TopFrame, path+".topframe")...)
	errL = append(errL, validateEnumList(banner.ExpDir, 1, 6, path+".expdir")...)
	errL = append(errL, validateEnumList(banner.API, 1, 9, path+".api")...)
	errL = append(errL, validateFlag(banner.VCm, path+".vcm")...)

	return errL
}

func validateFormat(format *openrtb26.Format, path string, formatIndex int) error {
	if format == nil {
		return nil
	}
	usesHW := format.W != 0 || format.H != 0
	usesRatios := format.WMin != 0 || format.WRatio != 0 || format.HRatio != 0

	if format.W < 0 {
		return invalidValue("%s.format[%d].w must be a positive number", path, formatIndex)
	}
	if format.H < 0 {
		return invalidValue("%s.format[%d].h must be a positive number", path, formatIndex)
	}
	if format.WRatio < 0 {
		return invalidValue("%s.format[%d].wratio must be a positive number", path, formatIndex)
	}
	if format.HRatio < 0 {
		return invalidValue("%s.format[%d].hratio must be a positive number", path, formatIndex)
	}
	if format.WMin < 0 {
		return invalidValue("%s.format[%d].wmin must be a positive number", path, formatIndex)
	}

	if usesHW && usesRatios {
		return invalid(`%s.format[%d] should define *either* {w, h} *or* {wmin, wratio, hratio}, but not both. If both are valid, send two "format" objects in the request.`, path, formatIndex)
	}
	if !usesHW && !usesRatios {
		return invalid(`%s.format[%d] should define *either* {w, h} (for static size requirements) *or* {wmin, wratio, hratio} (for flexible sizes) to be non-zero.`, path, formatIndex)
	}
	if usesHW && (format.W == 0 || format.H == 0) {
		return invalid(`%s.format[%d] must define non-zero "h" and "w" properties.`, path, formatIndex)
	}
	if usesRatios && (format.WMin == 0 || format.WRatio == 0 || format.HRatio == 0) {
		return invalid(`%s.format[%d] must define non-zero "wmin", "wratio", and "hratio" properties.`, path, formatIndex)
	}
	return nil
}

func validateCompanions(companions []openrtb26.Banner, path string) []error {
	var errL []error
	for i := range companions {
		errL = append(errL, validateBanner(&companions[i], fmt.Sprintf("%s[%d]", path, i), false)...)
	}
	return errL
}
