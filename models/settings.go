package models

// BrandingSettings is the single keyed record holding the storefront's
// visual identity.
type BrandingSettings struct {
	LogoURL           string `bson:"logoUrl" json:"logoUrl,omitempty"`
	BgImageURL        string `bson:"bgImageUrl" json:"bgImageUrl,omitempty"`
	HeadingFont       string `bson:"headingFont" json:"headingFont,omitempty"`
	HeadingFontFamily string `bson:"headingFontFamily" json:"headingFontFamily,omitempty"`
	BodyFont          string `bson:"bodyFont" json:"bodyFont,omitempty"`
	BodyFontFamily    string `bson:"bodyFontFamily" json:"bodyFontFamily,omitempty"`
}

// BrandingPatch is a merge-patch over BrandingSettings: only non-nil fields
// are applied, the rest of the record is left untouched.
type BrandingPatch struct {
	LogoURL           *string `json:"logoUrl,omitempty"`
	BgImageURL        *string `json:"bgImageUrl,omitempty"`
	HeadingFont       *string `json:"headingFont,omitempty"`
	HeadingFontFamily *string `json:"headingFontFamily,omitempty"`
	BodyFont          *string `json:"bodyFont,omitempty"`
	BodyFontFamily    *string `json:"bodyFontFamily,omitempty"`
}
