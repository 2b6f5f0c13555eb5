package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jrandrade/datastore-gateway/entity"
)

// fakeUserCollection answers with canned documents and records the
// filters and updates it was handed.
type fakeUserCollection struct {
	insertedID primitive.ObjectID
	insertErr  error
	docs       []interface{}
	findOneDoc interface{}
	findOneErr error
	updatedDoc interface{}
	updateErr  error
	deleted    int64
	deleteErr  error

	insertCalls int
	findCalls   int
	updateDoc   interface{}
	updateCalls int
	deleteCalls int
}

func (f *fakeUserCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &mongo.InsertOneResult{InsertedID: f.insertedID}, nil
}

func (f *fakeUserCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.findCalls++
	docs := f.docs
	if docs == nil {
		docs = []interface{}{}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *fakeUserCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	// NewSingleResultFromDocument rejects a nil document even when an
	// error is supplied, so errors ride along with a placeholder doc.
	if f.findOneErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.findOneErr, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findOneDoc, nil, nil)
}

func (f *fakeUserCollection) FindOneAndUpdate(ctx context.Context, filter, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult {
	f.updateCalls++
	f.updateDoc = update
	if f.updateErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.updateErr, nil)
	}
	return mongo.NewSingleResultFromDocument(f.updatedDoc, nil, nil)
}

func (f *fakeUserCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.deleteCalls++
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &mongo.DeleteResult{DeletedCount: f.deleted}, nil
}

func strPtr(s string) *string { return &s }

func TestUserRepository_Create(t *testing.T) {
	oid := primitive.NewObjectID()
	coll := &fakeUserCollection{insertedID: oid}
	repo := NewUserRepository(coll)

	user, err := repo.Create(context.Background(), "Ana", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, oid, user.ID)
	assert.Equal(t, "Ana", user.Nome)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, 1, coll.insertCalls)
}

func TestUserRepository_Create_StoreError(t *testing.T) {
	coll := &fakeUserCollection{insertErr: assert.AnError}
	repo := NewUserRepository(coll)

	_, err := repo.Create(context.Background(), "Ana", "ana@example.com")
	require.Error(t, err)

	var storeErr *entity.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestUserRepository_FindAll(t *testing.T) {
	coll := &fakeUserCollection{docs: []interface{}{
		entity.User{ID: primitive.NewObjectID(), Nome: "Ana", Email: "ana@example.com"},
		entity.User{ID: primitive.NewObjectID(), Nome: "Bruno", Email: "bruno@example.com"},
	}}
	repo := NewUserRepository(coll)

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ana", users[0].Nome)
	assert.Equal(t, "bruno@example.com", users[1].Email)
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	repo := NewUserRepository(&fakeUserCollection{})

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_FindFirst_EmptyCollection(t *testing.T) {
	coll := &fakeUserCollection{findOneErr: mongo.ErrNoDocuments}
	repo := NewUserRepository(coll)

	_, err := repo.FindFirst(context.Background())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	oid := primitive.NewObjectID()
	coll := &fakeUserCollection{findOneDoc: entity.User{ID: oid, Nome: "Ana", Email: "ana@example.com"}}
	repo := NewUserRepository(coll)

	user, err := repo.FindByID(context.Background(), oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, user.ID)
	assert.Equal(t, "Ana", user.Nome)
}

func TestUserRepository_FindByID_MalformedID(t *testing.T) {
	repo := NewUserRepository(&fakeUserCollection{})

	_, err := repo.FindByID(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	coll := &fakeUserCollection{findOneErr: mongo.ErrNoDocuments}
	repo := NewUserRepository(coll)

	_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepository_UpdateByID_PartialMerge(t *testing.T) {
	oid := primitive.NewObjectID()
	coll := &fakeUserCollection{
		updatedDoc: entity.User{ID: oid, Nome: "Novo", Email: "ana@example.com"},
	}
	repo := NewUserRepository(coll)

	user, err := repo.UpdateByID(context.Background(), oid.Hex(), entity.UserPatch{Nome: strPtr("Novo")})
	require.NoError(t, err)
	assert.Equal(t, "Novo", user.Nome)
	assert.Equal(t, "ana@example.com", user.Email)

	// only the supplied field may appear in the $set document
	update, ok := coll.updateDoc.(bson.M)
	require.True(t, ok)
	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "Novo", set["nome"])
	assert.NotContains(t, set, "email")
}

func TestUserRepository_UpdateByID_EmptyPatchReadsBack(t *testing.T) {
	oid := primitive.NewObjectID()
	coll := &fakeUserCollection{
		findOneDoc: entity.User{ID: oid, Nome: "Ana", Email: "ana@example.com"},
	}
	repo := NewUserRepository(coll)

	user, err := repo.UpdateByID(context.Background(), oid.Hex(), entity.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nome)
	assert.Zero(t, coll.updateCalls)
}

func TestUserRepository_UpdateByID_NotFound(t *testing.T) {
	coll := &fakeUserCollection{updateErr: mongo.ErrNoDocuments}
	repo := NewUserRepository(coll)

	_, err := repo.UpdateByID(context.Background(), primitive.NewObjectID().Hex(), entity.UserPatch{Nome: strPtr("Novo")})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepository_DeleteByID(t *testing.T) {
	coll := &fakeUserCollection{deleted: 1}
	repo := NewUserRepository(coll)

	err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Equal(t, 1, coll.deleteCalls)
}

func TestUserRepository_DeleteByID_NotFound(t *testing.T) {
	coll := &fakeUserCollection{deleted: 0}
	repo := NewUserRepository(coll)

	err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUserRepository_DeleteByID_MalformedID(t *testing.T) {
	coll := &fakeUserCollection{}
	repo := NewUserRepository(coll)

	err := repo.DeleteByID(context.Background(), "zzz")
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
	assert.Zero(t, coll.deleteCalls)
}
