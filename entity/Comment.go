package entity

import "time"

// Comment อยู่ใต้ Report เสมอ (ReportID ชี้ primary key ของ Report)
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CommentID string    `gorm:"not null" json:"commentId"`
	ReportID  uint      `gorm:"index" json:"-"`
	Author    string    `gorm:"not null" json:"author"`
	Text      string    `gorm:"not null" json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
