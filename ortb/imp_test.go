package ortb

import (
	"encoding/json"
	"testing"

	"github.com/prebid/openrtb/v20/adcom1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

func TestBuildImp(t *testing.T) {
	tests := []struct {
		name       string
		params     ImpParams
		index      int
		deviceType adcom1.DeviceType
		expected   string
	}{
		{
			name:     "banner_defaults",
			params:   ImpParams{Media: BannerParams{W: ptrutil.ToPtr[int64](320), H: ptrutil.ToPtr[int64](50)}},
			index:    0,
			expected: `{"id":"1","banner":{"w":320,"h":50,"format":[{"w":320,"h":50},{"w":320,"h":100}]},"bidfloorcur":"USD","secure":1}`,
		},
		{
			name: "caller_values",
			params: ImpParams{
				ID:          "slot-a",
				Media:       BannerParams{W: ptrutil.ToPtr[int64](250), H: ptrutil.ToPtr[int64](250)},
				BidFloor:    ptrutil.ToPtr(0.0),
				BidFloorCur: "EUR",
				Secure:      ptrutil.ToPtr[int8](0),
				Instl:       ptrutil.ToPtr[int8](1),
				TagID:       "header",
				PMP:         json.RawMessage(`{"private_auction":1,"deals":[{"id":"d1","bidfloor":2.5}]}`),
				Exp:         ptrutil.ToPtr[int64](300),
			},
			index: 3,
			expected: `{"id":"slot-a","banner":{"w":250,"h":250,"format":[{"w":250,"h":250}]},` +
				`"pmp":{"private_auction":1,"deals":[{"id":"d1","bidfloor":2.5}]},"instl":1,"tagid":"header",` +
				`"bidfloor":0,"bidfloorcur":"EUR","secure":0,"exp":300}`,
		},
		{
			name:       "video_sized_by_device",
			params:     ImpParams{Media: VideoParams{}},
			index:      1,
			deviceType: adcom1.DeviceConnected,
			expected: `{"id":"2","video":{"mimes":["video/mp4"],"minduration":5,"maxduration":30,"protocols":[2,3,5,6],` +
				`"w":1920,"h":1080,"plcmt":1,"linearity":1},"bidfloorcur":"USD","secure":1}`,
		},
		{
			name:     "native",
			params:   ImpParams{Media: NativeParams{Request: `{"assets":[{"id":1}]}`}},
			expected: `{"id":"1","native":{"request":"{\"assets\":[{\"id\":1}]}","ver":"1.2"},"bidfloorcur":"USD","secure":1}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			imp, err := BuildImp(test.params, test.index, test.deviceType)
			require.NoError(t, err)

			data, err := json.Marshal(imp)
			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(data))
		})
	}
}

func TestBuildImpWithoutMedia(t *testing.T) {
	_, err := BuildImp(ImpParams{}, 0, adcom1.DevicePC)

	var badInput *errortypes.BadInput
	assert.ErrorAs(t, err, &badInput)
}
