package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/homegrown/app/controllers"
	"github.com/shashiranjanraj/homegrown/app/models"
	"github.com/shashiranjanraj/homegrown/app/repositories"
	"github.com/shashiranjanraj/homegrown/app/services"
)

// memUserStore is a minimal in-memory services.UserStore.
type memUserStore struct {
	users []models.User
}

func (m *memUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (m *memUserStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (m *memUserStore) Create(_ context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memUserStore) Update(_ context.Context, u *models.User) error {
	for i := range m.users {
		if m.users[i].ID == u.ID {
			m.users[i] = *u
			return nil
		}
	}
	return repositories.ErrNotFound
}

func newAuthController() *controllers.AuthController {
	return controllers.NewAuthController(services.NewAuthService(&memUserStore{}))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSignupEndpoint(t *testing.T) {
	ctl := newAuthController()

	rec := postJSON(t, ctl.Signup,
		`{"name":"Asha Rao","email":"asha@example.com","password":"secret-pass"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, `"asha@example.com"`)
	assert.NotContains(t, body, "secret-pass")
}

func TestSignupValidationErrors(t *testing.T) {
	ctl := newAuthController()

	rec := postJSON(t, ctl.Signup, `{"name":"A","email":"not-an-email","password":"x"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"errors"`)
	assert.Contains(t, body, `"email"`)
	assert.Contains(t, body, `"password"`)
}

func TestSignupMalformedBody(t *testing.T) {
	ctl := newAuthController()

	rec := postJSON(t, ctl.Signup, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint(t *testing.T) {
	store := &memUserStore{}
	ctl := controllers.NewAuthController(services.NewAuthService(store))

	rec := postJSON(t, ctl.Signup,
		`{"name":"Asha Rao","email":"asha@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, ctl.Login, `{"email":"asha@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	rec = postJSON(t, ctl.Login, `{"email":"asha@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
