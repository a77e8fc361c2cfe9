package ortb

import (
	"github.com/buger/jsonparser"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

var nativeVersions = map[string]struct{}{
	"1.0": {},
	"1.1": {},
	"1.2": {},
}

func validateNative(native *openrtb26.Native, path string) []error {
	if native == nil {
		return nil
	}

	var errL []error

	if native.Request == "" {
		errL = append(errL, missingField(path, "request"))
	} else if !jsonutil.IsObject([]byte(native.Request)) {
		errL = append(errL, invalid("%s.request must be a JSON encoded Native request object", path))
	} else if !hasNativeAssets([]byte(native.Request)) {
		errL = append(errL, invalid("%s.request must contain at least one asset", path))
	}

	if native.Ver != "" {
		if _, ok := nativeVersions[native.Ver]; !ok {
			errL = append(errL, warning(errortypes.AdvisoryWarningCode, "%s.ver %q is not a known Native version", path, native.Ver))
		}
	}

	errL = append(errL, validateEnumList(native.API, 1, 9, path+".api")...)
	errL = append(errL, validateEnumList(native.BAttr, 1, 17, path+".battr")...)

	return errL
}

// hasNativeAssets accepts both the bare Native request and the 1.0 form wrapped in a "native" key.
func hasNativeAssets(request []byte) bool {
	if wrapped, dataType, _, err := jsonparser.Get(request, "native"); err == nil && dataType == jsonparser.Object {
		request = wrapped
	}

	count := 0
	_, err := jsonparser.ArrayEach(request, func(_ []byte, _ jsonparser.ValueType, _ int, _ error) {
		count++
	}, "assets")
	return err == nil && count > 0
}
