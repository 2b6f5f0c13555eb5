package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLifecycle(t *testing.T) {
	products := newFakeProductStore()
	r := newTestRouter(t, newFakeUserStore(), products, nil, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/produtos", `{"nome":"Caneta","descricao":"Azul","preco":2.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID        uint64  `json:"id"`
		Nome      string  `json:"nome"`
		Descricao string  `json:"descricao"`
		Preco     float64 `json:"preco"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, "Caneta", created.Nome)
	assert.Equal(t, 2.5, created.Preco)

	w = doJSON(t, r, http.MethodGet, "/produtos/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Caneta")

	w = doJSON(t, r, http.MethodDelete, "/produtos/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/produtos/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct_MissingField(t *testing.T) {
	products := newFakeProductStore()
	r := newTestRouter(t, newFakeUserStore(), products, nil, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/produtos", `{"nome":"Caneta","descricao":"Azul"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, products.createCalls)
}

func TestCreateProduct_ZeroPriceAllowed(t *testing.T) {
	products := newFakeProductStore()
	r := newTestRouter(t, newFakeUserStore(), products, nil, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/produtos", `{"nome":"Brinde","descricao":"Gratis","preco":0}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Preco float64 `json:"preco"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Zero(t, created.Preco)
}

func TestListProducts_EmptyArray(t *testing.T) {
	r := newTestRouter(t, newFakeUserStore(), newFakeProductStore(), nil, 1<<20)

	w := doJSON(t, r, http.MethodGet, "/produtos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetProduct_InvalidID(t *testing.T) {
	r := newTestRouter(t, newFakeUserStore(), newFakeProductStore(), nil, 1<<20)

	w := doJSON(t, r, http.MethodGet, "/produtos/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct_FullReplace(t *testing.T) {
	products := newFakeProductStore()
	r := newTestRouter(t, newFakeUserStore(), products, nil, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/produtos", `{"nome":"Caneta","descricao":"Azul","preco":2.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/produtos/1", `{"nome":"Caneta","descricao":"Vermelha","preco":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Descricao string  `json:"descricao"`
		Preco     float64 `json:"preco"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Vermelha", updated.Descricao)
	assert.Equal(t, 3.0, updated.Preco)
}

func TestUpdateProduct_PartialBodyRejected(t *testing.T) {
	products := newFakeProductStore()
	r := newTestRouter(t, newFakeUserStore(), products, nil, 1<<20)

	w := doJSON(t, r, http.MethodPost, "/produtos", `{"nome":"Caneta","descricao":"Azul","preco":2.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// full-replace endpoint: a price-only body must not reach the store
	w = doJSON(t, r, http.MethodPut, "/produtos/1", `{"preco":9.9}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, products.updateCalls)
}

func TestUpdateProduct_UnknownID(t *testing.T) {
	r := newTestRouter(t, newFakeUserStore(), newFakeProductStore(), nil, 1<<20)

	w := doJSON(t, r, http.MethodPut, "/produtos/99", `{"nome":"Caneta","descricao":"Azul","preco":2.5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct_UnknownID(t *testing.T) {
	r := newTestRouter(t, newFakeUserStore(), newFakeProductStore(), nil, 1<<20)

	w := doJSON(t, r, http.MethodDelete, "/produtos/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
