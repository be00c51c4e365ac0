package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/igorshiota/booking-app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// brandingKey identifies the single branding document.
const brandingKey = "branding"

// SettingsRepository defines access to the keyed business-settings records.
type SettingsRepository interface {
	// GetBranding retrieves the branding record, or an empty record if it
	// has never been written.
	GetBranding() (*models.BrandingSettings, error)
	// PatchBranding merges the non-nil fields of the patch into the
	// branding record, creating it if absent.
	PatchBranding(patch models.BrandingPatch) error
}

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo creates a SettingsRepository backed by the
// "businessSettings" collection.
func NewMongoSettingsRepo(db *mongo.Database) SettingsRepository {
	return &MongoSettingsRepo{coll: db.Collection("businessSettings")}
}

func (r *MongoSettingsRepo) GetBranding() (*models.BrandingSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var settings models.BrandingSettings
	filter := bson.M{"key": brandingKey}
	err := r.coll.FindOne(ctx, filter).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &models.BrandingSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch branding settings: %w", err)
	}
	return &settings, nil
}

func (r *MongoSettingsRepo) PatchBranding(patch models.BrandingPatch) error {
	set := brandingUpdate(patch)
	if len(set) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"key": brandingKey}
	update := bson.M{"$set": set}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to patch branding settings: %w", err)
	}
	return nil
}

// brandingUpdate builds the $set document from the named optional fields.
func brandingUpdate(patch models.BrandingPatch) bson.M {
	set := bson.M{}
	if patch.LogoURL != nil {
		set["logoUrl"] = *patch.LogoURL
	}
	if patch.BgImageURL != nil {
		set["bgImageUrl"] = *patch.BgImageURL
	}
	if patch.HeadingFont != nil {
		set["headingFont"] = *patch.HeadingFont
	}
	if patch.HeadingFontFamily != nil {
		set["headingFontFamily"] = *patch.HeadingFontFamily
	}
	if patch.BodyFont != nil {
		set["bodyFont"] = *patch.BodyFont
	}
	if patch.BodyFontFamily != nil {
		set["bodyFontFamily"] = *patch.BodyFontFamily
	}
	return set
}
