package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/viniciusmog/daily-diet-api/internal/api/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/service"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	SessionID string    `json:"sessionId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// toUserResponse includes the session token. Only the registration response
// may use it; the token is the whole credential.
func toUserResponse(user *domain.User) UserResponse {
	resp := toPublicUserResponse(user)
	if user.SessionID != nil {
		resp.SessionID = user.SessionID.String()
	}
	return resp
}

// toPublicUserResponse redacts the session token for any listing visible
// beyond the token's owner.
func toPublicUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

// Create registers a user and issues its session token. The token also goes
// out as a cookie so browser clients are authenticated right away.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    user.SessionID.String(),
		Path:     "/",
		HttpOnly: true,
	})

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := UsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, toPublicUserResponse(user))
	}

	writeJSON(w, http.StatusOK, resp)
}
