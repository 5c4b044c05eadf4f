package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/api/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username  string
	sessionID *uuid.UUID
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	sessionID := uuid.New()
	return &UserBuilder{
		username:  fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		sessionID: &sessionID,
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithSessionID sets the session token
func (b *UserBuilder) WithSessionID(sessionID uuid.UUID) *UserBuilder {
	b.sessionID = &sessionID
	return b
}

// WithoutSession clears the session token
func (b *UserBuilder) WithoutSession() *UserBuilder {
	b.sessionID = nil
	return b
}

// Build persists the user and returns it
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:        uuid.New(),
		Username:  b.username,
		SessionID: b.sessionID,
		CreatedAt: time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// MealBuilder creates test meals with a builder pattern
type MealBuilder struct {
	ownerID     uuid.UUID
	name        string
	description string
	onDiet      bool
	createdAt   time.Time
}

// NewMealBuilder creates a new MealBuilder owned by the given user
func NewMealBuilder(ownerID uuid.UUID) *MealBuilder {
	return &MealBuilder{
		ownerID:     ownerID,
		name:        fmt.Sprintf("meal_%s", uuid.New().String()[:8]),
		description: "test meal",
		onDiet:      true,
		createdAt:   time.Now(),
	}
}

// WithName sets the meal name
func (b *MealBuilder) WithName(name string) *MealBuilder {
	b.name = name
	return b
}

// WithDescription sets the meal description
func (b *MealBuilder) WithDescription(description string) *MealBuilder {
	b.description = description
	return b
}

// WithOnDiet sets the diet flag
func (b *MealBuilder) WithOnDiet(onDiet bool) *MealBuilder {
	b.onDiet = onDiet
	return b
}

// WithCreatedAt sets the creation timestamp
func (b *MealBuilder) WithCreatedAt(createdAt time.Time) *MealBuilder {
	b.createdAt = createdAt
	return b
}

// Build persists the meal and returns it
func (b *MealBuilder) Build(t *testing.T, db *gorm.DB) *domain.Meal {
	t.Helper()

	meal := &domain.Meal{
		ID:          uuid.New(),
		UserID:      b.ownerID,
		Name:        b.name,
		Description: b.description,
		OnDiet:      b.onDiet,
		CreatedAt:   b.createdAt,
	}

	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create test meal: %v", err)
	}

	return meal
}

// RegisteredUser holds the response of a registration call plus the issued
// session cookie, ready to attach to follow-up requests.
type RegisteredUser struct {
	ID        string
	Username  string
	SessionID string
	Cookie    *http.Cookie
}

// RegisterUser registers a user through the HTTP API and captures the
// session cookie.
func RegisterUser(t *testing.T, ts *TestServer, username string) *RegisteredUser {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"username": username})
	resp, err := http.Post(ts.URL("/users"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected registration status: %d", resp.StatusCode)
	}

	var decoded struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode registration response: %v", err)
	}

	user := &RegisteredUser{
		ID:        decoded.ID,
		Username:  decoded.Username,
		SessionID: decoded.SessionID,
	}
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			user.Cookie = c
		}
	}
	if user.Cookie == nil {
		t.Fatal("registration response did not set a session cookie")
	}

	return user
}

// DoRequest performs an HTTP request with an optional session cookie and
// JSON body.
func DoRequest(t *testing.T, method, url string, cookie *http.Cookie, body interface{}) *http.Response {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return resp
}
