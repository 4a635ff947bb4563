package entities

import "time"

// Account is a registered user's identity and credential record.
// The password hash is never serialized to JSON.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DisplayName  string    `gorm:"size:100" json:"display_name"`
	Username     string    `gorm:"uniqueIndex;size:64" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// PublicAccount is the subset of Account fields safe to return to clients.
type PublicAccount struct {
	ID          uint      `json:"id"`
	DisplayName string    `json:"display_name"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public returns the account's public identity fields.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Username:    a.Username,
		Email:       a.Email,
		CreatedAt:   a.CreatedAt,
	}
}
