package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`

	// Google Calendar OAuth tokens, AES-GCM encrypted at rest.
	EncryptedGoogleAccessToken  string     `gorm:"column:encrypted_google_access_token" json:"-"`
	EncryptedGoogleRefreshToken string     `gorm:"column:encrypted_google_refresh_token" json:"-"`
	GoogleTokenExpiry           *time.Time `gorm:"column:google_token_expiry" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) GoogleConnected() bool {
	return u.EncryptedGoogleAccessToken != ""
}
