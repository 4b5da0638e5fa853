package models

import "time"

const (
	RoleRecruiter = "Recruiter"
	RoleApplicant = "Applicant"
)

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         *string   `gorm:"type:text" json:"name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	RoleID       uint      `gorm:"not null" json:"role_id"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Role Role `gorm:"foreignKey:RoleID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// IsRecruiter reports whether the user's resolved role is the recruiter role.
func (u *User) IsRecruiter() bool {
	return u.Role.Name == RoleRecruiter
}

// DocumentQuota is the maximum number of documents a single comparison
// request may include for this user's role.
func (u *User) DocumentQuota() int {
	if u.IsRecruiter() {
		return 5
	}
	return 1
}
