package users

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
	"github.com/vetcare-app/vetcare-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUserNotFound is returned when no identity exists for an id
var ErrUserNotFound = communication.NewError(communication.ErrNotFound, "Staff profile not found")

// UserRepositoryInterface is the interface for a UserRepository
type UserRepositoryInterface interface {
	Add(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateContact(ctx context.Context, user *User) error
}

// UserRepository does everything related to user storing
type UserRepository struct {
	DB     *mongo.Collection
	Logger logger.Interface
}

// EnsureIndexes creates the indexes the repository relies on
func (s UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := s.DB.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "create users indexes")
}

// Add adds a user
func (s UserRepository) Add(ctx context.Context, user *User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := s.DB.InsertOne(ctx, user)
	return errors.Wrap(err, "insert user")
}

// FindByID finds a user by ID, without the password hash
func (s UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u = User{}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	result := s.DB.FindOne(ctx, bson.M{"_id": objectID}, options.FindOne().SetProjection(bson.M{"password": 0}))
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(result.Err(), "find user")
	}

	err = result.Decode(&u)
	if err != nil {
		return nil, errors.Wrap(err, "decode user")
	}
	return &u, nil
}

// UpdateContact writes the contact fields of a user
func (s UserRepository) UpdateContact(ctx context.Context, user *User) error {
	user.UpdatedAt = time.Now()

	result, err := s.DB.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"phone":     user.Phone,
		"address":   user.Address,
		"updatedAt": user.UpdatedAt,
	}})
	if err != nil {
		return errors.Wrap(err, "update user")
	}

	if result.MatchedCount != 1 {
		return ErrUserNotFound
	}

	return nil
}
