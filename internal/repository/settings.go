package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

// SettingsDocument is one stored version of the calculation settings.
// Once Create returns, only the newest stored version is active.
type SettingsDocument struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Gravity        float64              `bson:"gravity" json:"gravity"`
	LaminarFormula model.LaminarFormula `bson:"laminar_formula" json:"laminar_formula"`
	Active         bool                 `bson:"active" json:"active"`
	Version        int                  `bson:"version" json:"version"`
	CreatedAt      time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updated_at"`
	CreatedBy      string               `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// CalculationSettings returns the domain settings held by the document.
func (d SettingsDocument) CalculationSettings() model.CalculationSettings {
	return model.CalculationSettings{
		Gravity:        d.Gravity,
		LaminarFormula: d.LaminarFormula,
	}
}

// SettingsRepository stores versioned calculation settings.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Settings,
	}
}

// GetActive returns the active settings, or nil when none were stored. If a
// concurrent Create has not yet retired an older version, the newest active
// version wins.
func (r *SettingsRepository) GetActive(ctx context.Context) (*SettingsDocument, error) {
	var doc SettingsDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{"active": true}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create stores settings as the next version and then retires every older
// active version. The new document is inserted before anything is
// deactivated, so a failed insert leaves the previous version active. A
// version taken by a concurrent Create is retried with the next number.
func (r *SettingsRepository) Create(ctx context.Context, settings model.CalculationSettings, createdBy string) (*SettingsDocument, error) {
	var (
		doc SettingsDocument
		err error
	)
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		doc, err = r.insertNextVersion(ctx, settings, createdBy)
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	_, err = r.collection.UpdateMany(
		ctx,
		bson.M{"active": true, "version": bson.M{"$lt": doc.Version}},
		bson.M{"$set": bson.M{"active": false, "updated_at": doc.UpdatedAt}},
	)
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// maxCreateAttempts bounds retries on a version number taken concurrently.
const maxCreateAttempts = 5

func (r *SettingsRepository) insertNextVersion(ctx context.Context, settings model.CalculationSettings, createdBy string) (SettingsDocument, error) {
	version, err := r.nextVersion(ctx)
	if err != nil {
		return SettingsDocument{}, err
	}

	now := time.Now().UTC()
	doc := SettingsDocument{
		ID:             primitive.NewObjectID(),
		Gravity:        settings.Gravity,
		LaminarFormula: settings.LaminarFormula,
		Active:         true,
		Version:        version,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      createdBy,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return SettingsDocument{}, err
	}
	return doc, nil
}

// List returns stored settings, newest version first.
func (r *SettingsRepository) List(ctx context.Context, limit int) ([]SettingsDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []SettingsDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (r *SettingsRepository) nextVersion(ctx context.Context) (int, error) {
	var latest SettingsDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return latest.Version + 1, nil
}
