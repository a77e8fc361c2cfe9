package ortb

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prebid/ortb-builder/util/ptrutil"
)

func TestBuildAudio(t *testing.T) {
	tests := []struct {
		name     string
		params   AudioParams
		expected string
	}{
		{
			name:     "defaults",
			params:   AudioParams{},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"minduration":5,"maxduration":30,"protocols":[7,8,9,10]}`,
		},
		{
			name:     "pod_duration_suppresses_bounds",
			params:   AudioParams{PodDur: ptrutil.ToPtr[int64](60)},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"poddur":60,"protocols":[7,8,9,10]}`,
		},
		{
			name:     "max_sequence_suppresses_bounds",
			params:   AudioParams{MaxSeq: ptrutil.ToPtr[int64](0)},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"maxseq":0,"protocols":[7,8,9,10]}`,
		},
		{
			name:     "required_durations_suppress_bounds",
			params:   AudioParams{RqdDurs: []int64{15}},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"rqddurs":[15],"protocols":[7,8,9,10]}`,
		},
		{
			name:     "empty_required_durations_keep_bounds",
			params:   AudioParams{RqdDurs: []int64{}},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"minduration":5,"maxduration":30,"protocols":[7,8,9,10]}`,
		},
		{
			name: "overrides",
			params: AudioParams{
				Overrides: json.RawMessage(`{"feed":3,"sequence":1,"protocols":[9]}`),
			},
			expected: `{"mimes":["audio/mp4","audio/mpeg"],"minduration":5,"maxduration":30,"protocols":[9],"sequence":1,"feed":3}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			audio, err := BuildAudio(test.params)
			require.NoError(t, err)

			data, err := json.Marshal(audio)
			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(data))
		})
	}
}
