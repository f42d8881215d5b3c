package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zilptext/internal/delivery/http/middleware"
	"zilptext/internal/delivery/http/validator"
	domainerrors "zilptext/internal/domain/errors"
	"zilptext/internal/domain/service"
	mockSvc "zilptext/internal/mocks/service"
	mockUC "zilptext/internal/mocks/usecase"
	"zilptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	echo     *echo.Echo
	uc       *mockUC.MockAccountUsecase
	tokenSvc *mockSvc.MockTokenService
}

// createTestServer wires the handler into a real echo instance with the
// production validator and error handler, so the asserted payloads are the
// exact wire shapes.
func createTestServer(t *testing.T) handlerFixtures {
	t.Helper()

	uc := mockUC.NewMockAccountUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAccountHandler(uc, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e.POST("/api/v1/sign-up", h.SignUp)
	e.POST("/api/v1/social-sign-up", h.SocialSignUp)
	e.POST("/api/v1/sign-in", h.SignIn)
	e.POST("/api/v1/social-sign-in", h.SocialSignIn)
	e.GET("/api/v1/email-verification", h.VerifyEmail)
	e.GET("/api/v1/profile-pic/:id", h.ProfilePic)
	e.GET("/api/v1/check-auth", h.CheckAuth, authMiddleware.Authenticate)

	return handlerFixtures{echo: e, uc: uc, tokenSvc: tokenSvc}
}

func postJSON(e *echo.Echo, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

const signUpPayload = `{
	"plateNumber": "abc123",
	"email": "driver@example.com",
	"firstName": "Ada",
	"lastName": "Lovelace",
	"password": "secret",
	"phone": "5550100"
}`

func TestSignUp_Success(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Register", mock.Anything, mock.MatchedBy(func(input *usecase.RegisterInput) bool {
		return input.PlateNumber == "abc123" && input.Email == "driver@example.com"
	})).Return(&usecase.RegisterOutput{AccountID: uuid.New()}, nil)

	rec := postJSON(fx.echo, "/api/v1/sign-up", signUpPayload)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	// No session token before the email is verified.
	assert.NotContains(t, body, "token")
}

func TestSignUp_ValidationFailure(t *testing.T) {
	fx := createTestServer(t)

	rec := postJSON(fx.echo, "/api/v1/sign-up", `{"plateNumber":"a!","email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "plateNumber")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")

	fx.uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSignUp_PlateConflictAnswers200(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPlateAlreadyOwned)

	rec := postJSON(fx.echo, "/api/v1/sign-up", signUpPayload)

	// Legacy clients read the conflict out of a 200 envelope.
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, []string{"validation.unique"}, body.Errors["plateNumber"])
}

func TestSocialSignUp_ReturnsSession(t *testing.T) {
	fx := createTestServer(t)
	accountID := uuid.New()

	fx.uc.On("RegisterSocial", mock.Anything, mock.Anything).
		Return(&usecase.AuthOutput{
			Token:     "session-token",
			AccountID: accountID,
			FirstName: "Grace",
			LastName:  "Hopper",
		}, nil)

	rec := postJSON(fx.echo, "/api/v1/social-sign-up", `{
		"plateNumber": "xyz789",
		"email": "social@example.com",
		"firstName": "Grace",
		"lastName": "Hopper",
		"phone": "5550111"
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "session-token", body["token"])
	assert.Equal(t, accountID.String(), body["userId"])
	assert.Equal(t, "Grace", body["firstname"])
	assert.Equal(t, "Hopper", body["lastname"])
}

func TestSignIn_Success(t *testing.T) {
	fx := createTestServer(t)
	accountID := uuid.New()

	fx.uc.On("Login", mock.Anything, mock.MatchedBy(func(input *usecase.LoginInput) bool {
		return input.LoginID == "5550100" && input.Password == "secret"
	})).Return(&usecase.AuthOutput{
		Token:     "session-token",
		AccountID: accountID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, nil)

	rec := postJSON(fx.echo, "/api/v1/sign-in", `{"loginId":"5550100","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "session-token", body["token"])
	assert.Equal(t, accountID.String(), body["userId"])
}

func TestSignIn_WrongCredentials(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrWrongCredentials)

	rec := postJSON(fx.echo, "/api/v1/sign-in", `{"loginId":"5550100","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "wrong_credentials", body["error"])
}

func TestSignIn_NotVerified(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrAccountNotVerified)

	rec := postJSON(fx.echo, "/api/v1/sign-in", `{"loginId":"5550100","password":"secret"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "account_not_verified")
}

func TestVerifyEmail_QueryParameters(t *testing.T) {
	fx := createTestServer(t)

	fx.uc.On("VerifyEmail", mock.Anything, mock.MatchedBy(func(input *usecase.VerifyEmailInput) bool {
		return input.Email == "driver@example.com" && input.Token == "tok"
	})).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email-verification?email=driver%40example.com&token=tok", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestVerifyEmail_MissingToken(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/email-verification?email=driver%40example.com", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.uc.AssertNotCalled(t, "VerifyEmail", mock.Anything, mock.Anything)
}

func TestCheckAuth_ReturnsClaims(t *testing.T) {
	fx := createTestServer(t)
	accountID := uuid.New()

	fx.tokenSvc.On("ValidateToken", "valid-token").Return(&service.SessionClaims{
		AccountID: accountID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/check-auth", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, accountID.String(), body["userId"])
	assert.Equal(t, "Ada", body["firstname"])
}

func TestCheckAuth_NoToken(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/check-auth", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "wrong_credentials")
}

func TestProfilePic_InvalidID(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile-pic/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "account_not_found")
	fx.uc.AssertNotCalled(t, "ProfilePicPath", mock.Anything, mock.Anything)
}

func TestProfilePic_UnknownAccount(t *testing.T) {
	fx := createTestServer(t)
	accountID := uuid.New()

	fx.uc.On("ProfilePicPath", mock.Anything, accountID).
		Return("", domainerrors.ErrAccountNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile-pic/"+accountID.String(), nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
