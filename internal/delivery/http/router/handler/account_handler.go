// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"zilptext/internal/delivery/http/middleware"
	"zilptext/internal/delivery/http/response"
	domainerrors "zilptext/internal/domain/errors"
	"zilptext/internal/domain/service"
	"zilptext/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signUpResponse acknowledges a password registration. No token is issued
// until the email address has been verified.
type signUpResponse struct {
	Success bool `json:"success"`
}

// authResponse is the authenticated session payload shared by sign-in,
// social sign-in, social sign-up and check-auth.
type authResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token,omitempty"`
	UserID    string `json:"userId"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the password registration request.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(echo.NewHTTPError(http.StatusBadRequest, "invalid sign-up input"))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if _, err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signUpResponse{Success: true})
}

// SocialSignUp handles registration from an externally-asserted identity.
// It answers with a live session since no email verification is pending.
func (h *AccountHandler) SocialSignUp(c echo.Context) error {
	var input usecase.SocialRegisterInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(echo.NewHTTPError(http.StatusBadRequest, "invalid social sign-up input"))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.RegisterSocial(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output))
}

// SignIn handles the password login request.
func (h *AccountHandler) SignIn(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(echo.NewHTTPError(http.StatusBadRequest, "invalid sign-in input"))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// SocialSignIn handles the social login request.
func (h *AccountHandler) SocialSignIn(c echo.Context) error {
	var input usecase.SocialLoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(echo.NewHTTPError(http.StatusBadRequest, "invalid social sign-in input"))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.SocialLogin(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// VerifyEmail handles the activation link from the verification email.
// The parameters arrive as query values since the link is opened in a browser.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	input := usecase.VerifyEmailInput{
		Email: c.QueryParam("email"),
		Token: c.QueryParam("token"),
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signUpResponse{Success: true})
}

// CheckAuth confirms the caller's session token is still valid. The auth
// middleware has already validated the token and stashed the claims.
func (h *AccountHandler) CheckAuth(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*service.SessionClaims)
	if !ok {
		return domainerrors.ErrWrongCredentials
	}

	return response.Success(c, http.StatusOK, authResponse{
		Success:   true,
		UserID:    claims.AccountID.String(),
		Firstname: claims.FirstName,
		Lastname:  claims.LastName,
	})
}

// ProfilePic serves an account's stored profile picture file.
func (h *AccountHandler) ProfilePic(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrAccountNotFound
	}

	path, err := h.uc.ProfilePicPath(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.File(path)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		Success:   true,
		Token:     output.Token,
		UserID:    output.AccountID.String(),
		Firstname: output.FirstName,
		Lastname:  output.LastName,
	}
}
