package openrtb26

import "github.com/prebid/openrtb/v20/openrtb2"

// Native represents a native type impression. The Request field carries a JSON-encoded
// string of a Native Ad Specification request. No field has a meaningful zero value, so the
// shared openrtb2 type serves.
type Native = openrtb2.Native
