package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cedarlux/cedar_lux_site/backend/auth"
	"github.com/cedarlux/cedar_lux_site/backend/consultant"
	"github.com/cedarlux/cedar_lux_site/backend/models"
	"github.com/cedarlux/cedar_lux_site/backend/routes"
	"github.com/cedarlux/cedar_lux_site/backend/store"
)

const testAdminPassword = "cedarcreek"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("JWT_KEY", "test-signing-key")

	mem := store.NewMemStore()
	catalog := store.NewCatalog(mem, models.SeedProperties())
	settings := store.NewSettings(mem, models.DefaultSettings())
	gate := auth.NewGate(testAdminPassword)
	advisor := consultant.New("") // no key: replies come from the fallback set

	router := mux.NewRouter()
	routes.Routes(router, catalog, settings, gate, advisor, nil)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func adminToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "", map[string]string{"password": testAdminPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestListPropertiesReturnsSeedCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/properties")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	properties := decodeBody[[]models.Property](t, resp)
	require.Len(t, properties, 3)
	assert.Equal(t, "The Azure Peninsula Estate", properties[0].Title)
}

func TestListPropertiesFiltered(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/properties?status=Available")
	require.NoError(t, err)
	properties := decodeBody[[]models.Property](t, resp)
	require.Len(t, properties, 1)
	assert.Equal(t, "1", properties[0].ID)

	resp, err = http.Get(srv.URL + "/properties?neighborhood=Long+Cove&status=Available")
	require.NoError(t, err)
	properties = decodeBody[[]models.Property](t, resp)
	assert.Empty(t, properties, "seed Long Cove listing is Sold, conjunction must exclude it")
}

func TestGetPropertyByID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/properties/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	property := decodeBody[models.Property](t, resp)
	assert.Equal(t, "Sunset Cove Sanctuary", property.Title)

	resp, err = http.Get(srv.URL + "/properties/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/properties", "", models.Property{Title: "X", Status: models.StatusAvailable})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/properties", "not-a-real-token", models.Property{Title: "X", Status: models.StatusAvailable})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPropertyCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := adminToken(t, srv)

	// Create: id assigned, listing becomes the newest.
	created := models.Property{
		Title:        "Harbor Point Retreat",
		Price:        1975000,
		Beds:         3,
		Baths:        3.5,
		Sqft:         3400,
		Status:       models.StatusAvailable,
		Neighborhood: "Star Harbor",
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/properties", token, created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stored := decodeBody[models.Property](t, resp)
	require.NotEmpty(t, stored.ID)

	listResp, err := http.Get(srv.URL + "/properties")
	require.NoError(t, err)
	listing := decodeBody[[]models.Property](t, listResp)
	require.Len(t, listing, 4)
	assert.Equal(t, stored.ID, listing[0].ID)

	// Update: wholesale replace, 404 on unknown id.
	stored.Title = "Harbor Point Retreat II"
	stored.Status = models.StatusUnderConstruction
	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/properties/%s", srv.URL, stored.ID), token, stored)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, err := http.Get(fmt.Sprintf("%s/properties/%s", srv.URL, stored.ID))
	require.NoError(t, err)
	updated := decodeBody[models.Property](t, getResp)
	assert.Equal(t, "Harbor Point Retreat II", updated.Title)
	assert.Equal(t, models.StatusUnderConstruction, updated.Status)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/properties/ghost", token, created)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Delete twice: both succeed, catalog shrinks once.
	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/properties/%s", srv.URL, stored.ID), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/properties/%s", srv.URL, stored.ID), token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	listResp, err = http.Get(srv.URL + "/properties")
	require.NoError(t, err)
	assert.Len(t, decodeBody[[]models.Property](t, listResp), 3)
}

func TestCreatePropertyValidation(t *testing.T) {
	srv := newTestServer(t)
	token := adminToken(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/properties", token, models.Property{Status: models.StatusAvailable})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing title")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/properties", token, models.Property{Title: "X", Status: "Haunted"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "unknown status")

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/properties", token, models.Property{ID: "1", Title: "X", Status: models.StatusAvailable})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "duplicate id")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "", map[string]string{"password": "wrong"})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	srv := newTestServer(t)
	token := adminToken(t, srv)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/logout", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestConsultEndpointAlwaysReplies(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/consultant", "", map[string]any{
		"message": "Tell me about boat houses",
		"history": []models.ChatMessage{{Role: models.RoleAssistant, Content: "Welcome."}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.NotEmpty(t, body["reply"], "upstream is unconfigured, reply must be a fallback string")
}
