package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

// userCollection is the single registration collection. The legacy data has
// spreadsheet-import field names ("Email ID", "Full Name"), which stay at
// this boundary only.
const userCollection = "user_reg"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

type mongoUserRecord struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"Full Name"`
	Email              string             `bson:"Email ID"`
	Mobile             int64              `bson:"Mobile"`
	RegistrationNumber string             `bson:"Registration Number"`
	CertURL            string             `bson:"cert_url,omitempty"`
	OTP                string             `bson:"otp,omitempty"`
	OTPExpiry          time.Time          `bson:"otpExpiry,omitempty"`
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	return r.findOne(ctx, bson.M{"Email ID": email})
}

func (r *MongoUserRepository) FindByMobile(ctx context.Context, mobile int64) (*domain.UserRecord, error) {
	return r.findOne(ctx, bson.M{"Mobile": mobile})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.UserRecord, error) {
	var mu mongoUserRecord
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user: %v", domain.ErrStoreUnavailable, err)
	}

	user := &domain.UserRecord{
		ID:                 mu.ID.Hex(),
		Name:               mu.Name,
		Email:              mu.Email,
		Mobile:             mu.Mobile,
		RegistrationNumber: mu.RegistrationNumber,
		CertURL:            mu.CertURL,
	}
	if mu.OTP != "" {
		user.Challenge = &domain.PendingChallenge{
			Code:      mu.OTP,
			ExpiresAt: mu.OTPExpiry.UTC(),
		}
	}
	return user, nil
}

// SetChallenge overwrites the record's pending challenge in a single $set.
func (r *MongoUserRepository) SetChallenge(ctx context.Context, id string, challenge domain.PendingChallenge) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"otp": challenge.Code, "otpExpiry": challenge.ExpiresAt}},
	)
	if err != nil {
		return fmt.Errorf("%w: set challenge: %v", domain.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ClearChallengeIfMatches consumes the challenge with one conditional
// update: the filter matches the code, the update unsets it. Concurrent
// callers race on ModifiedCount; only one observes 1.
func (r *MongoUserRepository) ClearChallengeIfMatches(ctx context.Context, id, code string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, domain.ErrUserNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "otp": code},
		bson.M{"$unset": bson.M{"otp": "", "otpExpiry": ""}},
	)
	if err != nil {
		return false, fmt.Errorf("%w: clear challenge: %v", domain.ErrStoreUnavailable, err)
	}
	return res.ModifiedCount == 1, nil
}
