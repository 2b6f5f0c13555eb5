package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrandrade/datastore-gateway/entity"
)

// userCollection is the slice of the Mongo collection API the repository
// uses; infra.MongoCollection implements it, tests substitute a fake.
type userCollection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type UserRepository struct {
	coll userCollection
}

func NewUserRepository(coll userCollection) *UserRepository {
	return &UserRepository{coll: coll}
}

func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed user id %q", entity.ErrInvalidInput, id)
	}
	return oid, nil
}

// Create inserts a user; the store assigns the identifier.
func (r *UserRepository) Create(ctx context.Context, nome, email string) (*entity.User, error) {
	user := entity.User{Nome: nome, Email: email}
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, entity.NewStoreError("insert user", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return &user, nil
}

// FindAll returns every user, unpaginated.
func (r *UserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, entity.NewStoreError("find users", err)
	}
	users := make([]entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, entity.NewStoreError("decode users", err)
	}
	return users, nil
}

// FindFirst returns an arbitrary user, serving the document-store health
// probe. ErrNotFound means the store answered but the collection is empty.
func (r *UserRepository) FindFirst(ctx context.Context) (*entity.User, error) {
	var user entity.User
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, entity.NewStoreError("find first user", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	var user entity.User
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, entity.NewStoreError("find user", err)
	}
	return &user, nil
}

// UpdateByID merges the patch onto the stored record and returns the
// post-update document. Fields absent from the patch are preserved.
func (r *UserRepository) UpdateByID(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	oid, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	set := bson.M{}
	if patch.Nome != nil {
		set["nome"] = *patch.Nome
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}

	var user entity.User
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, entity.NewStoreError("update user", err)
	}
	return &user, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseUserID(id)
	if err != nil {
		return err
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return entity.NewStoreError("delete user", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrNotFound
	}
	return nil
}
