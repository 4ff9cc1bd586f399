package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/sessions"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type AuthController struct {
	svc      services.UserService
	sessions *sessions.Manager
}

func NewAuthController(svc services.UserService, mgr *sessions.Manager) *AuthController {
	return &AuthController{svc: svc, sessions: mgr}
}

// LoginHandler => POST /api/user/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Email and password are required", nil, err)
		return
	}

	user, err := c.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Server error during login.", nil, err)
		return
	}
	if user == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid credentials", nil)
		return
	}

	if _, err := c.sessions.Start(r.Context(), w, user); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Server error during login.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

// RegisterHandler => POST /api/user/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "All registration fields are required", nil, err)
		return
	}

	if err := c.svc.Register(r.Context(), req.Username, req.Email, req.Password, req.CpNumber, req.Role); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.MessageResponse{Message: "Registered successfully"})
}

// LogoutHandler => POST /api/user/logout (auth required)
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionUserFrom(r.Context())
	if user != nil {
		if err := c.svc.Logout(r.Context(), user); err != nil {
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Logout failed", nil, err)
			return
		}
	}

	if err := c.sessions.Destroy(r.Context(), w, r); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Logout failed", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Logged out successfully"})
}

// MeHandler => GET /api/user/me (auth required)
func (c *AuthController) MeHandler(w http.ResponseWriter, r *http.Request) {
	user := middleware.SessionUserFrom(r.Context())
	if user == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MeResponse{
		IsAuthenticated: true,
		UserID:          user.ID,
		UserName:        user.Username,
		UserEmail:       user.Email,
		UserNumber:      user.CpNumber,
		UserRole:        user.Role,
	})
}

// SessionHandler => GET /api/user/session: always 200, user null when
// anonymous, so frontends can probe without triggering an auth error.
func (c *AuthController) SessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := c.sessions.Current(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Session lookup failed", nil, err)
		return
	}

	resp := dtos.SessionResponse{}
	if sess != nil {
		resp.User = &sess.User
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
