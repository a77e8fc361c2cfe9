package ortb

import (
	"net/url"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/net/publicsuffix"

	"github.com/prebid/ortb-builder/errortypes"
	"github.com/prebid/ortb-builder/openrtb26"
)

// lowTMax is the timeout below which few bidders can respond in time.
const lowTMax = 50

func validateAdvisories(req *openrtb26.BidRequest) []error {
	var errL []error

	if site := req.Site; site != nil {
		if site.ID == "" && site.Domain == "" && site.Page == "" {
			errL = append(errL, warning(errortypes.AdvisoryWarningCode, `request.site should include "id", "domain" or "page" to identify the inventory`))
		}
		if site.Page != "" && !govalidator.IsRequestURL(site.Page) {
			errL = append(errL, warning(errortypes.AdvisoryWarningCode, "request.site.page %q is not a valid absolute URL", site.Page))
		} else if site.Domain != "" && site.Page != "" {
			if pageDomain, ok := registrableDomain(site.Page); ok && !sameRegistrableDomain(site.Domain, pageDomain) {
				errL = append(errL, warning(errortypes.AdvisoryWarningCode, "request.site.domain %q does not match the domain of request.site.page (%s)", site.Domain, pageDomain))
			}
		}
	}

	if app := req.App; app != nil && app.ID == "" && app.Bundle == "" {
		errL = append(errL, warning(errortypes.AdvisoryWarningCode, `request.app should include "id" or "bundle" to identify the inventory`))
	}

	if req.AT != nil && *req.AT != 1 && *req.AT != 2 && *req.AT < exchangeSpecific {
		errL = append(errL, warning(errortypes.AdvisoryWarningCode, "request.at %d is not a standard auction type; use 1 (first price), 2 (second price plus) or 500 and above for exchange specific types", *req.AT))
	}

	if req.TMax != nil && *req.TMax > 0 && *req.TMax < lowTMax {
		errL = append(errL, warning(errortypes.AdvisoryWarningCode, "request.tmax %dms is very low; most bidders cannot respond in time", *req.TMax))
	}

	return errL
}

// registrableDomain returns the eTLD+1 of the page URL host.
func registrableDomain(page string) (string, bool) {
	u, err := url.Parse(page)
	if err != nil || u.Hostname() == "" {
		return "", false
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return "", false
	}
	return domain, true
}

func sameRegistrableDomain(domain, pageDomain string) bool {
	siteDomain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(domain))
	if err != nil {
		return true
	}
	return siteDomain == pageDomain
}
