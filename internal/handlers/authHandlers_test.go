package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"portfolio/internal/models"
)

type stubAuthService struct {
	result *models.LoginResult
	calls  int
}

func (s *stubAuthService) VerifyLogin(ctx context.Context, creds *models.Login) *models.LoginResult {
	s.calls++
	return s.result
}

func (s *stubAuthService) GetAdminProfile(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	return nil, nil
}

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	return rr
}

func TestLoginOutcomeStatusMapping(t *testing.T) {
	cases := []struct {
		outcome models.LoginOutcome
		status  int
		errMsg  string
	}{
		{models.LoginMissingFields, http.StatusBadRequest, "Email and password required"},
		{models.LoginBotCheckRequired, http.StatusBadRequest, "reCAPTCHA verification required"},
		{models.LoginBotCheckFailed, http.StatusBadRequest, "reCAPTCHA verification failed"},
		{models.LoginInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{models.LoginAccountMisconfigured, http.StatusInternalServerError, "Account configuration error"},
		{models.LoginInternalError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		svc := &stubAuthService{result: &models.LoginResult{Outcome: tc.outcome}}
		rr := postLogin(t, NewAuthHandler(svc), `{"email":"a@b.com","password":"pw"}`)

		assert.Equal(t, tc.status, rr.Code, "outcome %s", tc.outcome)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, tc.errMsg, body["error"])
	}
}

func TestLoginSuccessResponse(t *testing.T) {
	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Email:    "test@site.com",
		Password: "$2b$10$should-never-leak",
	}
	svc := &stubAuthService{result: &models.LoginResult{
		Outcome: models.LoginSuccess,
		Admin:   admin,
		Token:   "signed.jwt.token",
	}}

	rr := postLogin(t, NewAuthHandler(svc), `{"email":"test@site.com","password":"correctpw"}`)

	assert.Equal(t, http.StatusOK, rr.Code)

	raw := rr.Body.String()
	assert.NotContains(t, raw, "$2b$", "password hash must never be serialized")
	assert.NotContains(t, raw, "password")

	var body struct {
		OK    bool          `json:"ok"`
		Admin *models.Admin `json:"admin"`
		Token string        `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "test@site.com", body.Admin.Email)
	assert.Equal(t, "signed.jwt.token", body.Token)
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	svc := &stubAuthService{result: &models.LoginResult{Outcome: models.LoginSuccess}}

	rr := postLogin(t, NewAuthHandler(svc), `{"email": not-json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, svc.calls, "malformed bodies are rejected before the pipeline runs")
}
