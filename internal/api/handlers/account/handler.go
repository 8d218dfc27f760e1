package account

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookminton/internal/api/handlers"
	"github.com/m04kA/bookminton/internal/api/middleware"
	"github.com/m04kA/bookminton/internal/service/auth"
	"github.com/m04kA/bookminton/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSignUp      = "проверьте email, имя и пароль (не менее 6 символов)"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
	msgInvalidCredentials = "неверный email или пароль"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleSignUp POST /api/v1/auth/sign-up
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/sign-up - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignUp)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/sign-up - Email taken")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/sign-up - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User registered: user_id=%d, role=%s", user.ID, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, user)
}

// HandleSignIn POST /api/v1/auth/sign-in
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/sign-in - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: user_id=%d", token.Session.UserID)
	handlers.RespondJSON(w, http.StatusOK, token)
}

// HandleSession GET /api/v1/auth/session
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromSession(session))
}

// HandleSignOut POST /api/v1/auth/sign-out
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.SignOut(r.Context(), session); err != nil {
		h.logger.Error("POST /auth/sign-out - Failed to sign out: user_id=%d, error=%v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-out - Signed out: user_id=%d", session.UserID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
