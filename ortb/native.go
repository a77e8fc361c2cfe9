package ortb

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

type NativeParams struct {
	Request string `json:"request,omitempty"`
	Ver     string `json:"ver,omitempty"`

	Overrides json.RawMessage `json:"-"`
}

func (p *NativeParams) UnmarshalJSON(data []byte) error {
	type nativeParams NativeParams
	if err := json.Unmarshal(data, (*nativeParams)(p)); err != nil {
		return err
	}
	p.Overrides = cloneSlice(data)
	return nil
}

func (NativeParams) MediaType() MediaType {
	return MediaTypeNative
}

func (p NativeParams) apply(imp *openrtb26.Imp, _ adcom1.DeviceType) error {
	native, err := BuildNative(p)
	if err != nil {
		return err
	}
	imp.Native = native
	return nil
}

// BuildNative builds a native object, defaulting to a minimal Native 1.2 request with a title
// and a main image.
func BuildNative(params NativeParams) (*openrtb26.Native, error) {
	native := &openrtb26.Native{
		Request: params.Request,
		Ver:     params.Ver,
	}
	if native.Request == "" {
		native.Request = DefaultNativeRequest
	}
	if native.Ver == "" {
		native.Ver = DefaultNativeVer
	}

	return jsonutil.MergePatch(native, params.Overrides)
}
