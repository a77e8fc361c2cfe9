package ortb

import (
	"encoding/json"

	"github.com/prebid/ortb-builder/openrtb26"
	"github.com/prebid/ortb-builder/util/jsonutil"
)

// BuildSite builds the site context from the caller's domain and page. The publisher override is
// merged after the site override, so it wins for site.publisher.
func BuildSite(domain, page string, site, publisher json.RawMessage) (*openrtb26.Site, error) {
	built, err := jsonutil.MergePatch(&openrtb26.Site{Domain: domain, Page: page}, site)
	if err != nil {
		return nil, err
	}

	built.Publisher, err = mergePublisher(built.Publisher, publisher)
	if err != nil {
		return nil, err
	}
	return built, nil
}

// BuildApp builds an app context. It is used instead of a site whenever an app override is given.
func BuildApp(domain string, app, publisher json.RawMessage) (*openrtb26.App, error) {
	built, err := jsonutil.MergePatch(&openrtb26.App{Domain: domain}, app)
	if err != nil {
		return nil, err
	}

	built.Publisher, err = mergePublisher(built.Publisher, publisher)
	if err != nil {
		return nil, err
	}
	return built, nil
}

func mergePublisher(base *openrtb26.Publisher, publisher json.RawMessage) (*openrtb26.Publisher, error) {
	if jsonutil.IsNull(publisher) {
		return base, nil
	}
	if base == nil {
		base = &openrtb26.Publisher{}
	}
	return jsonutil.MergePatch(base, publisher)
}

// decodeOverride decodes an optional nested override, returning nil when it is absent.
func decodeOverride[T any](raw json.RawMessage) (*T, error) {
	if jsonutil.IsNull(raw) {
		return nil, nil
	}

	var out T
	if err := jsonutil.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
