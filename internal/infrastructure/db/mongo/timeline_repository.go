package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

const (
	educationCollection  = "education"
	experienceCollection = "experience"
)

// EducationRepository persists education timeline entries.
type EducationRepository struct {
	col *mongo.Collection
}

func NewEducationRepository(db *mongo.Database) *EducationRepository {
	return &EducationRepository{col: db.Collection(educationCollection)}
}

// List returns entries sorted by timeline order.
func (r *EducationRepository) List(ctx context.Context) ([]domain.Education, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}

	entries := []domain.Education{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *EducationRepository) FindByID(ctx context.Context, id string) (*domain.Education, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Education
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEducationNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EducationRepository) Create(ctx context.Context, e *domain.Education) (*domain.Education, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EducationRepository) Update(ctx context.Context, e *domain.Education) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEducationNotFound
	}
	return nil
}

func (r *EducationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEducationNotFound
	}
	return nil
}

// ExperienceRepository persists work-history timeline entries.
type ExperienceRepository struct {
	col *mongo.Collection
}

func NewExperienceRepository(db *mongo.Database) *ExperienceRepository {
	return &ExperienceRepository{col: db.Collection(experienceCollection)}
}

// List returns entries sorted by timeline order.
func (r *ExperienceRepository) List(ctx context.Context) ([]domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}

	entries := []domain.Experience{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ExperienceRepository) FindByID(ctx context.Context, id string) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Experience
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) (*domain.Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}

func (r *ExperienceRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrExperienceNotFound
	}
	return nil
}
