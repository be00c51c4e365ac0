package settingsRepo

import (
	"testing"

	"github.com/igorshiota/booking-app/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBrandingUpdateIncludesOnlySetFields(t *testing.T) {
	patch := models.BrandingPatch{
		LogoURL:        strPtr("/images/logo.png"),
		BodyFontFamily: strPtr("'Segoe UI', sans-serif"),
	}

	set := brandingUpdate(patch)

	assert.Len(t, set, 2)
	assert.Equal(t, "/images/logo.png", set["logoUrl"])
	assert.Equal(t, "'Segoe UI', sans-serif", set["bodyFontFamily"])
	assert.NotContains(t, set, "bgImageUrl")
	assert.NotContains(t, set, "headingFont")
}

func TestBrandingUpdateEmptyPatch(t *testing.T) {
	set := brandingUpdate(models.BrandingPatch{})
	assert.Empty(t, set)
}

func TestBrandingUpdateAllowsClearingWithEmptyString(t *testing.T) {
	set := brandingUpdate(models.BrandingPatch{BgImageURL: strPtr("")})
	assert.Equal(t, "", set["bgImageUrl"])
}
