package ortb

import (
	"github.com/prebid/ortb-builder/openrtb26"
)

func validateVideo(video *openrtb26.Video, path string) []error {
	if video == nil {
		return nil
	}

	var errL []error

	if len(video.MIMEs) < 1 {
		errL = append(errL, missingMIMEs(path))
	}

	// Dimensions are signed in the object model. Enforce they are not negative.
	if video.W != nil && *video.W < 0 {
		errL = append(errL, invalidValue("%s.w must be a positive number", path))
	}
	if video.H != nil && *video.H < 0 {
		errL = append(errL, invalidValue("%s.h must be a positive number", path))
	}

	errL = append(errL, validateDurations(video.MinDuration, video.MaxDuration, video.RqdDurs, path)...)
	errL = append(errL, validateBitrates(video.MinBitRate, video.MaxBitRate, path)...)

	if video.StartDelay != nil && *video.StartDelay < -2 {
		errL = append(errL, invalidValue("%s.startdelay must be -2, -1, 0 or a positive number of seconds", path))
	}
	errL = append(errL, validateNonNegative(video.MaxSeq, path+".maxseq")...)
	errL = append(errL, validateNonNegative(video.PodDur, path+".poddur")...)
	errL = append(errL, validateNonNegative(video.Sequence, path+".sequence")...)
	errL = append(errL, validateRange(video.PodSeq, -1, 1, path+".podseq")...)
	errL = append(errL, validateRange(video.SlotInPod, -1, 2, path+".slotinpod")...)
	errL = append(errL, validateNonNegativeFloat(video.MinCPMPerSec, path+".mincpmpersec")...)

	errL = append(errL, validateEnumList(video.Protocols, 1, 14, path+".protocols")...)
	if video.Protocol != nil {
		errL = append(errL, validateRange(video.Protocol, 1, 14, path+".protocol")...)
	}
	errL = append(errL, validateRange(video.Placement, 1, 5, path+".placement")...)
	errL = append(errL, validateRange(video.Plcmt, 1, 4, path+".plcmt")...)
	errL = append(errL, validateRange(video.Linearity, 1, 2, path+".linearity")...)

	errL = append(errL, validateFlag(video.Skip, path+".skip")...)
	errL = append(errL, validateNonNegative(video.SkipMin, path+".skipmin")...)
	errL = append(errL, validateNonNegative(video.SkipAfter, path+".skipafter")...)

	errL = append(errL, validateEnumList(video.BAttr, 1, 17, path+".battr")...)
	if video.MaxExtended != nil && *video.MaxExtended < -1 {
		errL = append(errL, invalidValue("%s.maxextended must be -1, 0 or a positive number of seconds", path))
	}
	errL = append(errL, validateFlag(video.BoxingAllowed, path+".boxingallowed")...)
	errL = append(errL, validateEnumList(video.PlaybackMethod, 1, 7, path+".playbackmethod")...)
	errL = append(errL, validateRange(video.PlaybackEnd, 1, 3, path+".playbackend")...)
	errL = append(errL, validateEnumList(video.Delivery, 1, 3, path+".delivery")...)
	errL = append(errL, validateRange(video.Pos, 0, 7, path+".pos")...)
	errL = append(errL, validateCompanions(video.CompanionAd, path+".companionad")...)
	errL = append(errL, validateEnumList(video.API, 1, 9, path+".api")...)
	errL = append(errL, validateEnumList(video.CompanionType, 1, 3, path+".companiontype")...)
	errL = append(errL, validateEnumList(video.PodDedupe, 1, 8, path+".poddedupe")...)

	return errL
}

func missingMIMEs(path string) error {
	return invalid("%s.mimes must contain at least one supported MIME type", path)
}

// validateDurations checks duration bounds and required durations. An inverted pair yields
// exactly one error.
func validateDurations(minDuration, maxDuration *int64, rqdDurs []int64, path string) []error {
	var errL []error
	errL = append(errL, validateNonNegative(minDuration, path+".minduration")...)
	errL = append(errL, validateNonNegative(maxDuration, path+".maxduration")...)
	if len(errL) == 0 {
		errL = append(errL, validateOrdering(minDuration, maxDuration, path, "minduration", "maxduration")...)
	}

	for i, d := range rqdDurs {
		if d <= 0 {
			errL = append(errL, invalidValue("%s.rqddurs[%d] must be a positive number of seconds", path, i))
		}
	}
	return errL
}

func validateBitrates(minBitrate, maxBitrate *int64, path string) []error {
	var errL []error
	errL = append(errL, validateNonNegative(minBitrate, path+".minbitrate")...)
	errL = append(errL, validateNonNegative(maxBitrate, path+".maxbitrate")...)
	if len(errL) == 0 {
		errL = append(errL, validateOrdering(minBitrate, maxBitrate, path, "minbitrate", "maxbitrate")...)
	}
	return errL
}
