package domain

import "time"

// User is an authenticated member of an organization
type User struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrganizationID uint64    `gorm:"column:organization_id;index" json:"organization_id"`
	Email          string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash   string    `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Name           string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Role           string    `gorm:"column:role;type:varchar(20)" json:"role"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// LoginRequest login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token pair plus the authenticated user
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}
