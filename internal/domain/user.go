package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	SessionID *uuid.UUID `json:"sessionId" gorm:"type:uuid;uniqueIndex"`
	CreatedAt time.Time  `json:"createdAt"`
}
