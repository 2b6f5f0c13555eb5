package controller_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jrandrade/datastore-gateway/config"
	"github.com/jrandrade/datastore-gateway/entity"
	"github.com/jrandrade/datastore-gateway/http/controller"
	routes "github.com/jrandrade/datastore-gateway/http/route"
	"github.com/jrandrade/datastore-gateway/infra"
	"github.com/jrandrade/datastore-gateway/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, users repository.UserStore, products repository.ProductStore, store *infra.ObjectStoreClient, maxBytes int64) *gin.Engine {
	t.Helper()

	cfg := &config.Config{EnvConfig: &config.EnvConfig{
		Upload: config.Upload{MaxBytes: maxBytes},
	}}
	inf := &infra.Infra{
		ObjectStore: store,
		Logger:      infra.NewNoopLogger(),
	}
	repo := &repository.Repository{UserRepo: users, ProductRepo: products}

	return routes.SetupRouter(controller.NewController(cfg, inf, repo))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartBody(t *testing.T, fileField, filename string, content []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	part, err := writer.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

// fakeUserStore mimics the document store in memory, including the
// identifier validation the real repository performs.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]entity.User
	err   error

	createCalls int
	updateCalls int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]entity.User{}}
}

func (s *fakeUserStore) parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed user id %q", entity.ErrInvalidInput, id)
	}
	return oid, nil
}

func (s *fakeUserStore) Create(ctx context.Context, nome, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.err != nil {
		return nil, s.err
	}
	user := entity.User{ID: primitive.NewObjectID(), Nome: nome, Email: email}
	s.users[user.ID.Hex()] = user
	return &user, nil
}

func (s *fakeUserStore) FindAll(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	users := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *fakeUserStore) FindFirst(ctx context.Context) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		return &u, nil
	}
	return nil, entity.ErrNotFound
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := s.parseID(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) UpdateByID(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	if _, err := s.parseID(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if patch.Nome != nil {
		user.Nome = *patch.Nome
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	s.users[id] = user
	return &user, nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.parseID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// fakeProductStore mimics the relational store in memory.
type fakeProductStore struct {
	mu       sync.Mutex
	products map[uint64]entity.Product
	nextID   uint64
	err      error

	createCalls int
	updateCalls int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[uint64]entity.Product{}}
}

func (s *fakeProductStore) Create(ctx context.Context, nome, descricao string, preco float64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.err != nil {
		return nil, s.err
	}
	s.nextID++
	product := entity.Product{ID: s.nextID, Nome: nome, Descricao: descricao, Preco: preco}
	s.products[product.ID] = product
	return &product, nil
}

func (s *fakeProductStore) FindAll(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	products := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	return products, nil
}

func (s *fakeProductStore) FindByID(ctx context.Context, id uint64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	product, ok := s.products[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return &product, nil
}

func (s *fakeProductStore) UpdateByID(ctx context.Context, id uint64, nome, descricao string, preco float64) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.products[id]; !ok {
		return nil, entity.ErrNotFound
	}
	product := entity.Product{ID: id, Nome: nome, Descricao: descricao, Preco: preco}
	s.products[id] = product
	return &product, nil
}

func (s *fakeProductStore) DeleteByID(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.products[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.products, id)
	return nil
}
