package entity

import "time"

// User คือบัญชีผู้ใช้ของระบบ (admin | tech | resident)
type User struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"userId"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"` // เก็บเป็น bcrypt hash
	Role      string    `gorm:"not null;default:resident" json:"role"`
	FirstName string    `gorm:"not null" json:"firstName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
