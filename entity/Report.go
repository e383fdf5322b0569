package entity

import "time"

// Report คือรายการแจ้งซ่อมหนึ่งรายการ
// ReportID เป็นเลขอ้างอิงภายนอก (ฝั่ง client ใช้ตัวนี้ ไม่ใช่ primary key)
type Report struct {
	ID            uint       `gorm:"primarykey" json:"-"`
	ReportID      int64      `gorm:"uniqueIndex;not null" json:"reportId"`
	Category      string     `gorm:"not null" json:"category"`
	Priority      string     `gorm:"default:medium" json:"priority"`
	Detail        string     `gorm:"not null" json:"detail"`
	Status        string     `json:"status"`
	Owner         string     `gorm:"not null" json:"owner"`
	Feedback      string     `json:"feedback"`
	LikesCount    int        `json:"likesCount"`
	DislikesCount int        `json:"dislikesCount"`
	LikedBy       []string   `gorm:"serializer:json" json:"likedBy"`
	DislikedBy    []string   `gorm:"serializer:json" json:"dislikedBy"`
	Comments      []Comment  `gorm:"foreignKey:ReportID;references:ID" json:"comments"`
	StartedAt     *time.Time `json:"startedAt"`
	CompletedAt   *time.Time `json:"completedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
