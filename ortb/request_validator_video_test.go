package ortb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

func TestValidateVideo(t *testing.T) {
	tests := []struct {
		name       string
		video      *openrtb26.Video
		wantErrors int
	}{
		{
			name:       "nil",
			video:      nil,
			wantErrors: 0,
		},
		{
			name: "well_formed",
			video: &openrtb26.Video{
				MIMEs:      []string{"MIME1"},
				W:          ptrutil.ToPtr[int64](0),
				H:          ptrutil.ToPtr[int64](0),
				MinBitRate: ptrutil.ToPtr[int64](0),
				MaxBitRate: ptrutil.ToPtr[int64](0),
			},
			wantErrors: 0,
		},
		{
			name: "well_formed_with_nil_dims",
			video: &openrtb26.Video{
				MIMEs: []string{"MIME1"},
			},
			wantErrors: 0,
		},
		{
			name: "mimes_is_zero",
			video: &openrtb26.Video{
				MIMEs: []string{},
			},
			wantErrors: 1,
		},
		{
			name: "negative_width",
			video: &openrtb26.Video{
				MIMEs: []string{"MIME1"},
				W:     ptrutil.ToPtr[int64](-1),
			},
			wantErrors: 1,
		},
		{
			name: "negative_height",
			video: &openrtb26.Video{
				MIMEs: []string{"MIME1"},
				H:     ptrutil.ToPtr[int64](-1),
			},
			wantErrors: 1,
		},
		{
			name: "negative_min_bit_rate",
			video: &openrtb26.Video{
				MIMEs:      []string{"MIME1"},
				MinBitRate: ptrutil.ToPtr[int64](-1),
			},
			wantErrors: 1,
		},
		{
			name: "negative_max_bit_rate",
			video: &openrtb26.Video{
				MIMEs:      []string{"MIME1"},
				MaxBitRate: ptrutil.ToPtr[int64](-1),
			},
			wantErrors: 1,
		},
		{
			name: "ordered_durations",
			video: &openrtb26.Video{
				MIMEs:       []string{"MIME1"},
				MinDuration: ptrutil.ToPtr[int64](5),
				MaxDuration: ptrutil.ToPtr[int64](10),
			},
			wantErrors: 0,
		},
		{
			name: "inverted_durations",
			video: &openrtb26.Video{
				MIMEs:       []string{"MIME1"},
				MinDuration: ptrutil.ToPtr[int64](10),
				MaxDuration: ptrutil.ToPtr[int64](5),
			},
			wantErrors: 1,
		},
		{
			name: "unknown_protocol",
			video: &openrtb26.Video{
				MIMEs:     []string{"MIME1"},
				Protocols: []int64{2, 42},
			},
			wantErrors: 1,
		},
		{
			name: "unknown_plcmt",
			video: &openrtb26.Video{
				MIMEs: []string{"MIME1"},
				Plcmt: ptrutil.ToPtr[int64](5),
			},
			wantErrors: 1,
		},
		{
			name: "unknown_linearity",
			video: &openrtb26.Video{
				MIMEs:     []string{"MIME1"},
				Linearity: ptrutil.ToPtr[int64](3),
			},
			wantErrors: 1,
		},
		{
			name: "invalid_skip_flag",
			video: &openrtb26.Video{
				MIMEs: []string{"MIME1"},
				Skip:  ptrutil.ToPtr[int8](2),
			},
			wantErrors: 1,
		},
		{
			name: "start_delay_generic_post_roll",
			video: &openrtb26.Video{
				MIMEs:      []string{"MIME1"},
				StartDelay: ptrutil.ToPtr[int64](-2),
			},
			wantErrors: 0,
		},
		{
			name: "start_delay_out_of_range",
			video: &openrtb26.Video{
				MIMEs:      []string{"MIME1"},
				StartDelay: ptrutil.ToPtr[int64](-3),
			},
			wantErrors: 1,
		},
		{
			name: "invalid_slot_in_pod",
			video: &openrtb26.Video{
				MIMEs:     []string{"MIME1"},
				SlotInPod: ptrutil.ToPtr[int64](3),
			},
			wantErrors: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			errs := validateVideo(test.video, "request.imp[0].video")
			assert.Len(t, errs, test.wantErrors, "%v", errs)
		})
	}
}

func TestValidateVideoDurationMessage(t *testing.T) {
	video := &openrtb26.Video{
		MIMEs:       []string{"video/mp4"},
		MinDuration: ptrutil.ToPtr[int64](10),
		MaxDuration: ptrutil.ToPtr[int64](5),
	}

	errs := validateVideo(video, "request.imp[2].video")

	if assert.Len(t, errs, 1) {
		assert.EqualError(t, errs[0], "request.imp[2].video.minduration (10) must not exceed request.imp[2].video.maxduration (5)")
	}
}
