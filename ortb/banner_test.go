package ortb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

func TestBuildBannerCompanionSizes(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int64
		expectedFormat []openrtb26.Format
	}{
		{name: "300x250", w: 300, h: 250, expectedFormat: []openrtb26.Format{{W: 300, H: 250}, {W: 300, H: 600}}},
		{name: "728x90", w: 728, h: 90, expectedFormat: []openrtb26.Format{{W: 728, H: 90}, {W: 970, H: 90}}},
		{name: "320x50", w: 320, h: 50, expectedFormat: []openrtb26.Format{{W: 320, H: 50}, {W: 320, H: 100}}},
		{name: "160x600", w: 160, h: 600, expectedFormat: []openrtb26.Format{{W: 160, H: 600}, {W: 300, H: 600}}},
		{name: "300x600", w: 300, h: 600, expectedFormat: []openrtb26.Format{{W: 300, H: 600}, {W: 300, H: 250}}},
		{name: "970x250", w: 970, h: 250, expectedFormat: []openrtb26.Format{{W: 970, H: 250}, {W: 970, H: 90}}},
		{name: "336x280", w: 336, h: 280, expectedFormat: []openrtb26.Format{{W: 336, H: 280}, {W: 300, H: 250}}},
		{name: "468x60", w: 468, h: 60, expectedFormat: []openrtb26.Format{{W: 468, H: 60}, {W: 728, H: 90}}},
		{name: "970x90", w: 970, h: 90, expectedFormat: []openrtb26.Format{{W: 970, H: 90}, {W: 728, H: 90}}},
		{name: "320x100", w: 320, h: 100, expectedFormat: []openrtb26.Format{{W: 320, H: 100}, {W: 320, H: 50}}},
		{name: "no_companion", w: 250, h: 250, expectedFormat: []openrtb26.Format{{W: 250, H: 250}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			banner, err := BuildBanner(BannerParams{W: ptrutil.ToPtr(test.w), H: ptrutil.ToPtr(test.h)})
			require.NoError(t, err)
			assert.Equal(t, test.w, *banner.W)
			assert.Equal(t, test.h, *banner.H)
			assert.Equal(t, test.expectedFormat, banner.Format)
		})
	}
}

func TestBuildBanner(t *testing.T) {
	tests := []struct {
		name     string
		params   BannerParams
		expected string
	}{
		{
			name:     "no_size",
			params:   BannerParams{},
			expected: `{}`,
		},
		{
			name: "caller_format_kept",
			params: BannerParams{
				W:      ptrutil.ToPtr[int64](300),
				H:      ptrutil.ToPtr[int64](250),
				Format: []openrtb26.Format{{W: 320, H: 50}},
			},
			expected: `{"w":300,"h":250,"format":[{"w":320,"h":50}]}`,
		},
		{
			name: "overrides_win",
			params: BannerParams{
				W:         ptrutil.ToPtr[int64](300),
				H:         ptrutil.ToPtr[int64](250),
				Overrides: json.RawMessage(`{"pos":0,"btype":[1],"topframe":1}`),
			},
			expected: `{"w":300,"h":250,"format":[{"w":300,"h":250},{"w":300,"h":600}],"pos":0,"btype":[1],"topframe":1}`,
		},
		{
			name: "override_null_removes",
			params: BannerParams{
				W:         ptrutil.ToPtr[int64](300),
				H:         ptrutil.ToPtr[int64](250),
				Overrides: json.RawMessage(`{"format":null}`),
			},
			expected: `{"w":300,"h":250}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			banner, err := BuildBanner(test.params)
			require.NoError(t, err)

			data, err := json.Marshal(banner)
			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(data))
		})
	}
}

func TestBuildBannerIsIdempotent(t *testing.T) {
	params := BannerParams{
		W:         ptrutil.ToPtr[int64](728),
		H:         ptrutil.ToPtr[int64](90),
		Overrides: json.RawMessage(`{"w":728,"h":90,"battr":[1,2]}`),
	}

	first, err := BuildBanner(params)
	require.NoError(t, err)
	second, err := BuildBanner(params)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildBannerDoesNotShareCompanionTable(t *testing.T) {
	banner, err := BuildBanner(BannerParams{W: ptrutil.ToPtr[int64](300), H: ptrutil.ToPtr[int64](250)})
	require.NoError(t, err)

	banner.Format[1].W = 1

	again, err := BuildBanner(BannerParams{W: ptrutil.ToPtr[int64](300), H: ptrutil.ToPtr[int64](250)})
	require.NoError(t, err)
	assert.Equal(t, int64(300), again.Format[1].W)
}

func TestBuildBannerMalformedOverrides(t *testing.T) {
	_, err := BuildBanner(BannerParams{Overrides: json.RawMessage(`{"w":`)})
	assert.Error(t, err)
}
