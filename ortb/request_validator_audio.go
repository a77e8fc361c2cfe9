package ortb

import (
	"github.com/prebid/ortb-builder/openrtb26"
)

func validateAudio(audio *openrtb26.Audio, path string) []error {
	if audio == nil {
		return nil
	}

	var errL []error

	if len(audio.MIMEs) < 1 {
		errL = append(errL, missingMIMEs(path))
	}

	errL = append(errL, validateDurations(audio.MinDuration, audio.MaxDuration, audio.RqdDurs, path)...)
	errL = append(errL, validateBitrates(audio.MinBitrate, audio.MaxBitrate, path)...)

	errL = append(errL, validateNonNegative(audio.PodDur, path+".poddur")...)
	errL = append(errL, validateNonNegative(audio.Sequence, path+".sequence")...)
	errL = append(errL, validateNonNegative(audio.MaxSeq, path+".maxseq")...)
	errL = append(errL, validateRange(audio.PodSeq, -1, 1, path+".podseq")...)
	errL = append(errL, validateRange(audio.SlotInPod, -1, 2, path+".slotinpod")...)
	errL = append(errL, validateNonNegativeFloat(audio.MinCPMPerSec, path+".mincpmpersec")...)
	if audio.StartDelay != nil && *audio.StartDelay < -2 {
		errL = append(errL, invalidValue("%s.startdelay must be -2, -1, 0 or a positive number of seconds", path))
	}

	errL = append(errL, validateEnumList(audio.Protocols, 1, 14, path+".protocols")...)
	errL = append(errL, validateEnumList(audio.BAttr, 1, 17, path+".battr")...)
	if audio.MaxExtended != nil && *audio.MaxExtended < -1 {
		errL = append(errL, invalidValue("%s.maxextended must be -1, 0 or a positive number of seconds", path))
	}
	errL = append(errL, validateEnumList(audio.Delivery, 1, 3, path+".delivery")...)
	errL = append(errL, validateCompanions(audio.CompanionAd, path+".companionad")...)
	errL = append(errL, validateEnumList(audio.API, 1, 9, path+".api")...)
	errL = append(errL, validateEnumList(audio.CompanionType, 1, 3, path+".companiontype")...)
	errL = append(errL, validateRange(audio.Feed, 1, 3, path+".feed")...)
	errL = append(errL, validateFlag(audio.Stitched, path+".stitched")...)
	errL = append(errL, validateRange(audio.NVol, 0, 4, path+".nvol")...)

	return errL
}
