package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mateus-A-Soares/Instoc/internal/logger"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(serverURL, 0, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host gets a scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash is trimmed", raw: "http://instoc.local/", want: "http://instoc.local"},
		{name: "https is kept", raw: "https://instoc.local", want: "https://instoc.local"},
		{name: "empty address is rejected", raw: "   ", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := normalizeBaseURL(test.raw)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/jwt", r.URL.Path)

		var credentials map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "ana@instoc.com.br", credentials["email"])
		assert.Equal(t, "segredo", credentials["senha"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "header.payload.signature"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), "ana@instoc.com.br", "segredo")

	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", a.Token())
}

func TestLogin_WrongCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"erro":"wrong credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), "ana@instoc.com.br", "errada")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestListEnvironments_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ambiente", r.URL.Path)
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":3,"descricao":"Almoxarifado","cadastrante":{"id":1,"nome":"Ana"}}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	environments, err := a.ListEnvironments(context.Background())

	require.NoError(t, err)
	require.Len(t, environments, 1)
	assert.Equal(t, int64(3), environments[0].ID)
	assert.Equal(t, "Almoxarifado", environments[0].Description)
	require.NotNil(t, environments[0].Registrant)
	assert.Equal(t, "Ana", environments[0].Registrant.Name)
}

func TestDeleteEnvironment_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"erro":"environment still holds items"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	err := a.DeleteEnvironment(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMoveItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/item/11/movimentacao", r.URL.Path)

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(4), body["ambientePosterior"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":5,"ambienteAnterior":{"id":3},"ambientePosterior":{"id":4}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	movement, err := a.MoveItem(context.Background(), 11, 4)

	require.NoError(t, err)
	assert.Equal(t, int64(5), movement.ID)
	require.NotNil(t, movement.NextEnvironment)
	assert.Equal(t, int64(4), movement.NextEnvironment.ID)
}

func TestMoveItem_SameEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"erro":"item is already in the target environment"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.MoveItem(context.Background(), 11, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateItem_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"tipo":"tipo de item não encontrado"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	_, err := a.CreateItem(context.Background(), 999, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnprocessableEntity)
	assert.Contains(t, err.Error(), "tipo de item não encontrado")
}

func TestListItemTypes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/item/tipo", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"nome":"Notebook","tagsAnexadas":[{"id":9,"cabecalho":"Fabricante","corpo":"Dell","tipo":"TEXTO"}]}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored-token")

	itemTypes, err := a.ListItemTypes(context.Background())

	require.NoError(t, err)
	require.Len(t, itemTypes, 1)
	assert.Equal(t, "Notebook", itemTypes[0].Name)
	require.Len(t, itemTypes[0].AttachedTags, 1)
	assert.Equal(t, "Fabricante", itemTypes[0].AttachedTags[0].Header)
}
