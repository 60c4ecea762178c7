package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devfolio/portfolio-api/internal/core/domain"
)

const (
	usersCollection    = "users"
	adminsCollection   = "admins"
	countersCollection = "counters"
)

// AccountRepository stores standard and privileged accounts in two disjoint
// collections, each with its own ID sequence. The same numeric ID can
// therefore exist in both collections; callers must always pass the kind.
type AccountRepository struct {
	db *mongo.Database
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountDoc struct {
	ID           int64  `bson:"_id"`
	Name         string `bson:"name,omitempty"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	CreatedAt    int64  `bson:"created_at"`
}

func (r *AccountRepository) coll(kind domain.IdentityKind) *mongo.Collection {
	if kind == domain.KindPrivileged {
		return r.db.Collection(adminsCollection)
	}
	return r.db.Collection(usersCollection)
}

// nextID allocates the next value of the kind's ID sequence atomically via
// the counters collection.
func (r *AccountRepository) nextID(ctx context.Context, kind domain.IdentityKind) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.db.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": "account_id:" + string(kind)},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("allocate account id: %w", err)
	}
	return doc.Seq, nil
}

func (r *AccountRepository) Create(ctx context.Context, kind domain.IdentityKind, account *domain.Account) (*domain.Account, error) {
	id, err := r.nextID(ctx, kind)
	if err != nil {
		return nil, err
	}

	doc := accountDoc{
		ID:           id,
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt.Unix(),
	}

	if _, err := r.coll(kind).InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	created := *account
	created.ID = id
	return &created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, kind domain.IdentityKind, email string) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll(kind).FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return docToAccount(doc), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, kind domain.IdentityKind, id int64) (*domain.Account, error) {
	var doc accountDoc
	if err := r.coll(kind).FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}
	return docToAccount(doc), nil
}

func (r *AccountRepository) CountByKind(ctx context.Context, kind domain.IdentityKind) (int64, error) {
	n, err := r.coll(kind).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return n, nil
}

func docToAccount(doc accountDoc) *domain.Account {
	return &domain.Account{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    unixToTime(doc.CreatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
