package openrtb26

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
	"github.com/prebid/openrtb/v20/openrtb2"
)

// Site describes a website on which the impressions are offered.
type Site struct {
	ID            string                   `json:"id,omitempty"`
	Name          string                   `json:"name,omitempty"`
	Domain        string                   `json:"domain,omitempty"`
	CatTax        *adcom1.CategoryTaxonomy `json:"cattax,omitempty"`
	Cat           []string                 `json:"cat,omitempty"`
	SectionCat    []string                 `json:"sectioncat,omitempty"`
	PageCat       []string                 `json:"pagecat,omitempty"`
	Page          string                   `json:"page,omitempty"`
	Ref           string                   `json:"ref,omitempty"`
	Search        string                   `json:"search,omitempty"`
	Mobile        *int8                    `json:"mobile,omitempty"`
	PrivacyPolicy *int8                    `json:"privacypolicy,omitempty"`
	Publisher     *Publisher               `json:"publisher,omitempty"`
	Keywords      string                   `json:"keywords,omitempty"`
	Ext           json.RawMessage          `json:"ext,omitempty"`
}

// App describes a non-browser application on which the impressions are offered.
type App struct {
	ID            string                   `json:"id,omitempty"`
	Name          string                   `json:"name,omitempty"`
	Bundle        string                   `json:"bundle,omitempty"`
	Domain        string                   `json:"domain,omitempty"`
	StoreURL      string                   `json:"storeurl,omitempty"`
	CatTax        *adcom1.CategoryTaxonomy `json:"cattax,omitempty"`
	Cat           []string                 `json:"cat,omitempty"`
	SectionCat    []string                 `json:"sectioncat,omitempty"`
	PageCat       []string                 `json:"pagecat,omitempty"`
	Ver           string                   `json:"ver,omitempty"`
	PrivacyPolicy *int8                    `json:"privacypolicy,omitempty"`
	Paid          *int8                    `json:"paid,omitempty"`
	Publisher     *Publisher               `json:"publisher,omitempty"`
	Keywords      string                   `json:"keywords,omitempty"`
	Ext           json.RawMessage          `json:"ext,omitempty"`
}

// Publisher describes the publisher of the media in which the ad will be displayed. No field has
// a meaningful zero value, so the shared openrtb2 type serves.
type Publisher = openrtb2.Publisher
