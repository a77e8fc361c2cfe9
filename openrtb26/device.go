package openrtb26

import (
	"encoding/json"
)

// Device provides information pertaining to the device through which the user is interacting.
// A Device owns exactly one Geo.
type Device struct {
	Geo *Geo `json:"geo,omitempty"`

	// Standard "Do Not Track" flag as set in the header by the browser.
	DNT *int8 `json:"dnt,omitempty"`

	// "Limit Ad Tracking" signal commercially endorsed, where 0 = tracking is unrestricted.
	Lmt *int8 `json:"lmt,omitempty"`

	UA   string `json:"ua,omitempty"`
	IP   string `json:"ip,omitempty"`
	IPv6 string `json:"ipv6,omitempty"`

	// DeviceType holds adcom1.DeviceType values; exchange specific values start at 500.
	DeviceType int64 `json:"devicetype,omitempty"`

	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	OS    string `json:"os,omitempty"`
	OSV   string `json:"osv,omitempty"`
	HWV   string `json:"hwv,omitempty"`

	// Physical height and width of the screen in pixels.
	H *int64 `json:"h,omitempty"`
	W *int64 `json:"w,omitempty"`

	PPI     *int64   `json:"ppi,omitempty"`
	PxRatio *float64 `json:"pxratio,omitempty"`

	// Support for JavaScript, where 0 = no, 1 = yes.
	JS *int8 `json:"js,omitempty"`

	GeoFetch *int8  `json:"geofetch,omitempty"`
	FlashVer string `json:"flashver,omitempty"`

	// Browser language using ISO-639-1-alpha-2.
	Language string `json:"language,omitempty"`
	LangB    string `json:"langb,omitempty"`

	Carrier        string `json:"carrier,omitempty"`
	MCCMNC         string `json:"mccmnc,omitempty"`
	ConnectionType *int64 `json:"connectiontype,omitempty"`

	// ID sanctioned for advertiser use in the clear.
	IFA string `json:"ifa,omitempty"`

	// Hashed identifiers. Deprecated in favor of IFA.
	DIDSHA1  string `json:"didsha1,omitempty"`
	DIDMD5   string `json:"didmd5,omitempty"`
	DPIDSHA1 string `json:"dpidsha1,omitempty"`
	DPIDMD5  string `json:"dpidmd5,omitempty"`
	MACSHA1  string `json:"macsha1,omitempty"`
	MACMD5   string `json:"macmd5,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}

// Geo encapsulates various methods for specifying a geographic location.
type Geo struct {
	// Latitude from -90.0 to +90.0, where negative is south.
	Lat *float64 `json:"lat,omitempty"`

	// Longitude from -180.0 to +180.0, where negative is west.
	Lon *float64 `json:"lon,omitempty"`

	// Source of location data: 1 = GPS/location services, 2 = IP address, 3 = user provided.
	Type *int64 `json:"type,omitempty"`

	Accuracy  *int64 `json:"accuracy,omitempty"`
	LastFix   *int64 `json:"lastfix,omitempty"`
	IPService *int64 `json:"ipservice,omitempty"`

	// Country code using ISO-3166-1-alpha-3.
	Country string `json:"country,omitempty"`

	Region string `json:"region,omitempty"`
	Metro  string `json:"metro,omitempty"`
	City   string `json:"city,omitempty"`
	ZIP    string `json:"zip,omitempty"`

	// Local time as the number +/- of minutes from UTC.
	UTCOffset *int64 `json:"utcoffset,omitempty"`

	Ext json.RawMessage `json:"ext,omitempty"`
}
