package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/api/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/service"
)

type MealHandler struct {
	mealService *service.MealService
}

func NewMealHandler(mealService *service.MealService) *MealHandler {
	return &MealHandler{mealService: mealService}
}

type MealRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	OnDiet      bool   `json:"onDiet"`
}

type MealResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OnDiet      bool      `json:"onDiet"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MealsResponse struct {
	Meals []MealResponse `json:"meals"`
}

func toMealResponse(meal *domain.Meal) MealResponse {
	return MealResponse{
		ID:          meal.ID.String(),
		UserID:      meal.UserID.String(),
		Name:        meal.Name,
		Description: meal.Description,
		OnDiet:      meal.OnDiet,
		CreatedAt:   meal.CreatedAt,
	}
}

func toMealsResponse(meals []*domain.Meal) MealsResponse {
	resp := MealsResponse{Meals: make([]MealResponse, 0, len(meals))}
	for _, meal := range meals {
		resp.Meals = append(resp.Meals, toMealResponse(meal))
	}
	return resp
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	var req MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	meal, err := h.mealService.Create(r.Context(), userID, service.MealInput{
		Name:        req.Name,
		Description: req.Description,
		OnDiet:      req.OnDiet,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMealResponse(meal))
}

func (h *MealHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	meals, err := h.mealService.ListAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealsResponse(meals))
}

// ListByUser returns the meals of the user id in the path. Any authenticated
// caller may read any user's list; see DESIGN.md for why this stays open.
func (h *MealHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid user id"})
		return
	}

	meals, err := h.mealService.ListByUser(r.Context(), ownerID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealsResponse(meals))
}

func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	mealID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid meal id"})
		return
	}

	meal, err := h.mealService.Get(r.Context(), mealID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealResponse(meal))
}

func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	mealID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid meal id"})
		return
	}

	var req MealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	err = h.mealService.Update(r.Context(), mealID, userID, service.MealInput{
		Name:        req.Name,
		Description: req.Description,
		OnDiet:      req.OnDiet,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	mealID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid meal id"})
		return
	}

	if err := h.mealService.Delete(r.Context(), mealID, userID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (h *MealHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondError(w, domain.ErrUnauthenticated)
		return
	}

	summary, err := h.mealService.Summarize(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
