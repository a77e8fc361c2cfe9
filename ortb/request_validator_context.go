package ortb

import (
	"fmt"

	"github.com/asaskevich/govalidator"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
)

func validateSite(site *openrtb26.Site) []error {
	if site == nil {
		return nil
	}

	var errL []error
	errL = append(errL, validateFlag(site.Mobile, "request.site.mobile")...)
	errL = append(errL, validateFlag(site.PrivacyPolicy, "request.site.privacypolicy")...)
	return errL
}

func validateApp(app *openrtb26.App) []error {
	if app == nil {
		return nil
	}

	var errL []error
	errL = append(errL, validateFlag(app.PrivacyPolicy, "request.app.privacypolicy")...)
	errL = append(errL, validateFlag(app.Paid, "request.app.paid")...)
	return errL
}

func validateDevice(device *openrtb26.Device) []error {
	if device == nil {
		return nil
	}

	var errL []error

	if device.DeviceType != 0 {
		errL = append(errL, validateRange(&device.DeviceType, 1, 8, "request.device.devicetype")...)
	}
	if device.IP != "" && !govalidator.IsIPv4(device.IP) {
		errL = append(errL, invalidValue("request.device.ip %q is not a valid IPv4 address", device.IP))
	}
	if device.IPv6 != "" && !govalidator.IsIPv6(device.IPv6) {
		errL = append(errL, invalidValue("request.device.ipv6 %q is not a valid IPv6 address", device.IPv6))
	}

	errL = append(errL, validateFlag(device.DNT, "request.device.dnt")...)
	errL = append(errL, validateFlag(device.Lmt, "request.device.lmt")...)
	errL = append(errL, validateFlag(device.JS, "request.device.js")...)
	errL = append(errL, validateFlag(device.GeoFetch, "request.device.geofetch")...)

	if device.W != nil && *device.W < 0 {
		errL = append(errL, invalidValue("request.device.w must be a positive number"))
	}
	if device.H != nil && *device.H < 0 {
		errL = append(errL, invalidValue("request.device.h must be a positive number"))
	}
	errL = append(errL, validateNonNegative(device.PPI, "request.device.ppi")...)
	errL = append(errL, validateNonNegativeFloat(device.PxRatio, "request.device.pxratio")...)
	errL = append(errL, validateRange(device.ConnectionType, 0, 7, "request.device.connectiontype")...)

	errL = append(errL, validateGeo(device.Geo, "request.device.geo")...)
	return errL
}

func validateGeo(geo *openrtb26.Geo, path string) []error {
	if geo == nil {
		return nil
	}

	var errL []error

	if geo.Lat != nil && (*geo.Lat < -90 || *geo.Lat > 90) {
		errL = append(errL, invalidValue("%s.lat must be between -90 and 90", path))
	}
	if geo.Lon != nil && (*geo.Lon < -180 || *geo.Lon > 180) {
		errL = append(errL, invalidValue("%s.lon must be between -180 and 180", path))
	}
	errL = append(errL, validateRange(geo.Type, 1, 3, path+".type")...)
	errL = append(errL, validateNonNegative(geo.Accuracy, path+".accuracy")...)
	errL = append(errL, validateNonNegative(geo.LastFix, path+".lastfix")...)
	errL = append(errL, validateRange(geo.IPService, 1, 4, path+".ipservice")...)
	if geo.UTCOffset != nil && (*geo.UTCOffset < -720 || *geo.UTCOffset > 840) {
		errL = append(errL, invalidValue("%s.utcoffset must be between -720 and 840 minutes", path))
	}

	if geo.Country != "" && (len(geo.Country) != 3 || !govalidator.IsUpperCase(geo.Country) || !govalidator.IsAlpha(geo.Country)) {
		errL = append(errL, warning(errortypes.AdvisoryWarningCode, "%s.country %q should be an ISO-3166-1 alpha-3 code", path, geo.Country))
	}

	return errL
}

func validateRegs(regs *openrtb26.Regs) []error {
	if regs == nil {
		return nil
	}

	var errL []error
	errL = append(errL, validateFlag(regs.COPPA, "request.regs.coppa")...)
	errL = append(errL, validateFlag(regs.GDPR, "request.regs.gdpr")...)
	if regs.USPrivacy != "" && len(regs.USPrivacy) != 4 {
		errL = append(errL, invalidValue("request.regs.us_privacy %q must be a 4 character US Privacy string", regs.USPrivacy))
	}
	return errL
}

func validateSource(source *openrtb26.Source) []error {
	if source == nil {
		return nil
	}

	var errL []error
	errL = append(errL, validateFlag(source.FD, "request.source.fd")...)

	if source.SChain != nil {
		errL = append(errL, validateFlag(source.SChain.Complete, "request.source.schain.complete")...)
		for i := range source.SChain.Nodes {
			errL = append(errL, validateFlag(source.SChain.Nodes[i].HP, fmt.Sprintf("request.source.schain.nodes[%d].hp", i))...)
		}
	}
	return errL
}
