package ortb

import (
	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
)

const (
	DefaultSecure      = int8(1)
	DefaultBidFloorCur = "USD"

	DefaultAuctionType = int64(2)
	DefaultTMax        = int64(200)
	DefaultCurrency    = "USD"
	DefaultAllImps     = int8(0)

	DefaultBannerW = int64(300)
	DefaultBannerH = int64(250)

	DefaultMinDuration = int64(5)
	DefaultMaxDuration = int64(30)

	DefaultVideoLinearity = int64(1)
	DefaultVideoPlcmt     = int64(1)

	DefaultNativeVer = "1.2"

	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultIP        = "192.0.2.1"
	DefaultJS        = int8(1)
	DefaultLanguage  = "en"

	DefaultGeoCountry = "USA"
	DefaultGeoType    = int64(2)
)

// DefaultNativeRequest is a minimal Native 1.2 request asking for a title and a main image.
const DefaultNativeRequest = `{"ver":"1.2","assets":[{"id":1,"required":1,"title":{"len":90}},{"id":2,"required":1,"img":{"type":3,"wmin":300,"hmin":250}}]}`

var (
	defaultVideoMIMEs = []string{"video/mp4"}
	defaultAudioMIMEs = []string{"audio/mp4", "audio/mpeg"}

	// VAST 2.0, VAST 3.0 and their wrappers.
	defaultVideoProtocols = []int64{2, 3, 5, 6}

	// VAST 4.0, DAAST 1.0 and their wrappers.
	defaultAudioProtocols = []int64{7, 8, 9, 10}
)

type dimensions struct {
	w, h int64
}

// iabCompanionSizes pairs a standard IAB banner size with the size most commonly sold alongside it.
var iabCompanionSizes = map[dimensions]dimensions{
	{300, 250}: {300, 600},
	{728, 90}:  {970, 90},
	{320, 50}:  {320, 100},
	{160, 600}: {300, 600},
	{300, 600}: {300, 250},
	{970, 250}: {970, 90},
	{336, 280}: {300, 250},
	{468, 60}:  {728, 90},
	{970, 90}:  {728, 90},
	{320, 100}: {320, 50},
}

func videoDimensions(deviceType adcom1.DeviceType) dimensions {
	switch deviceType {
	case adcom1.DeviceConnected, adcom1.DeviceSetTopBox, adcom1.DeviceTV:
		return dimensions{1920, 1080}
	default:
		return dimensions{640, 360}
	}
}

// deviceTypeHint narrows a devicetype value to the enumerated range. Exchange specific values
// carry no dimension hint.
func deviceTypeHint(deviceType int64) adcom1.DeviceType {
	if deviceType < int64(adcom1.DeviceMobile) || deviceType > int64(adcom1.DeviceOOH) {
		return 0
	}
	return adcom1.DeviceType(deviceType)
}

func deviceDimensions(deviceType adcom1.DeviceType) dimensions {
	switch deviceType {
	case adcom1.DevicePhone, adcom1.DeviceMobile:
		return dimensions{390, 844}
	case adcom1.DeviceTablet:
		return dimensions{820, 1180}
	default:
		return dimensions{1920, 1080}
	}
}

// RequestDefaults are the request level values applied when the caller leaves them out.
type RequestDefaults struct {
	AuctionType int64
	TMax        int64
	Currency    []string
}

// NewRequestDefaults returns the OpenRTB conventional defaults: second price auction, a 200ms
// timeout and USD.
func NewRequestDefaults() RequestDefaults {
	return RequestDefaults{
		AuctionType: DefaultAuctionType,
		TMax:        DefaultTMax,
		Currency:    []string{DefaultCurrency},
	}
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}

	c := make([]T, len(s))
	copy(c, s)
	return c
}

func cloneFormats(s []openrtb26.Format) []openrtb26.Format {
	if s == nil {
		return nil
	}

	c := make([]openrtb26.Format, len(s))
	for i, f := range s {
		c[i] = f
		c[i].Ext = cloneSlice(f.Ext)
	}
	return c
}
