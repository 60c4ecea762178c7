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
	messagesCollection    = "messages"
	siteImagesCollection  = "site_images"
	resumesCollection     = "resumes"
	contactInfoCollection = "contact_info"
)

// contactInfoID is the fixed _id of the singleton contact-info document.
const contactInfoID = "contact_info"

// MessageRepository persists contact-form submissions.
type MessageRepository struct {
	col *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{col: db.Collection(messagesCollection)}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns messages newest first.
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "received_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	messages := []domain.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// SiteImageRepository persists named image slots. The unique index on name
// serializes concurrent uploads to the same slot.
type SiteImageRepository struct {
	col *mongo.Collection
}

func NewSiteImageRepository(db *mongo.Database) *SiteImageRepository {
	return &SiteImageRepository{col: db.Collection(siteImagesCollection)}
}

func (r *SiteImageRepository) List(ctx context.Context) ([]domain.SiteImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	images := []domain.SiteImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *SiteImageRepository) FindByName(ctx context.Context, name string) (*domain.SiteImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var img domain.SiteImage
	if err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&img); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrImageNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *SiteImageRepository) Upsert(ctx context.Context, img *domain.SiteImage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if img.ID == "" {
		img.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"name": img.Name},
		bson.M{
			"$set":         bson.M{"filename": img.Filename, "uploaded_at": img.UploadedAt},
			"$setOnInsert": bson.M{"_id": img.ID, "name": img.Name},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *SiteImageRepository) DeleteByName(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}

// ResumeRepository tracks uploaded resume files.
type ResumeRepository struct {
	col *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{col: db.Collection(resumesCollection)}
}

// Latest returns the most recently uploaded resume.
func (r *ResumeRepository) Latest(ctx context.Context) (*domain.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var resume domain.Resume
	err := r.col.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})).Decode(&resume)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepository) Save(ctx context.Context, resume *domain.Resume) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resume.ID = primitive.NewObjectID().Hex()
	_, err := r.col.InsertOne(ctx, resume)
	return err
}

// ContactInfoRepository persists the singleton contact-info document under a
// fixed _id.
type ContactInfoRepository struct {
	col *mongo.Collection
}

func NewContactInfoRepository(db *mongo.Database) *ContactInfoRepository {
	return &ContactInfoRepository{col: db.Collection(contactInfoCollection)}
}

// Get returns (nil, nil) when no record exists yet; the service layer
// creates the default.
func (r *ContactInfoRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var info domain.ContactInfo
	if err := r.col.FindOne(ctx, bson.M{"_id": contactInfoID}).Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

func (r *ContactInfoRepository) Upsert(ctx context.Context, info *domain.ContactInfo) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	info.ID = contactInfoID
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": contactInfoID}, info, options.Replace().SetUpsert(true))
	return err
}
