package ortb

import (
	"encoding/json"
	"strings"

	"github.com/mssola/user_agent"
	"github.com/prebid/openrtb/v20/adcom1"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
	"github.com/prebid/ortb-builder/util/ptrutil"
)

// BuildDevice builds the device context from the caller's device and geo overrides. Missing
// fields get realistic desktop defaults. When os or devicetype are missing they are derived from
// the user agent, and screen size follows the device type.
func BuildDevice(device, geo json.RawMessage) (*openrtb26.Device, error) {
	built, err := jsonutil.MergePatch(&openrtb26.Device{}, device)
	if err != nil {
		return nil, err
	}

	if built.UA == "" {
		built.UA = DefaultUserAgent
	}
	if built.IP == "" && built.IPv6 == "" {
		built.IP = DefaultIP
	}
	built.JS = ptrutil.OrDefault(built.JS, DefaultJS)
	if built.Language == "" {
		built.Language = DefaultLanguage
	}

	if built.OS == "" || built.DeviceType == 0 {
		deriveFromUserAgent(built)
	}

	size := deviceDimensions(deviceTypeHint(built.DeviceType))
	built.W = ptrutil.OrDefault(built.W, size.w)
	built.H = ptrutil.OrDefault(built.H, size.h)

	built.Geo, err = BuildGeo(built.Geo, geo)
	if err != nil {
		return nil, err
	}
	return built, nil
}

// BuildGeo merges the geo override over base and fills the country and location source.
func BuildGeo(base *openrtb26.Geo, geo json.RawMessage) (*openrtb26.Geo, error) {
	if base == nil {
		base = &openrtb26.Geo{}
	}

	built, err := jsonutil.MergePatch(base, geo)
	if err != nil {
		return nil, err
	}

	if built.Country == "" {
		built.Country = DefaultGeoCountry
	}
	built.Type = ptrutil.OrDefault(built.Type, DefaultGeoType)
	return built, nil
}

func deriveFromUserAgent(device *openrtb26.Device) {
	ua := user_agent.New(device.UA)

	if device.OS == "" {
		osInfo := ua.OSInfo()
		device.OS = osInfo.Name
		if device.OSV == "" {
			device.OSV = osInfo.Version
		}
	}

	if device.DeviceType == 0 {
		device.DeviceType = int64(deviceTypeFromUserAgent(ua, device.UA))
	}
}

var connectedTVMarkers = []string{"smart-tv", "smarttv", "crkey", "roku", "appletv", "tizen", "webos", "bravia", "aftt", "aftm"}

func deviceTypeFromUserAgent(ua *user_agent.UserAgent, raw string) adcom1.DeviceType {
	lower := strings.ToLower(raw)
	for _, marker := range connectedTVMarkers {
		if strings.Contains(lower, marker) {
			return adcom1.DeviceTV
		}
	}

	if strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobile")) {
		return adcom1.DeviceTablet
	}

	if ua.Mobile() {
		return adcom1.DevicePhone
	}
	return adcom1.DevicePC
}
