package configs

import (
	"log"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// บัญชีเริ่มต้นสามบัญชี (รหัสผ่านร่วมกันมาจาก SEED_PASSWORD)
var defaultUsers = []entity.User{
	{UserID: "U001", Username: "admin", Role: "admin", FirstName: "Admin"},
	{UserID: "U002", Username: "tech", Role: "tech", FirstName: "ช่าง"},
	{UserID: "U003", Username: "resident", Role: "resident", FirstName: "ผู้พัก"},
}

// SeedUsers สร้าง user เริ่มต้นถ้ายังไม่มี (idempotent)
func SeedUsers(db *gorm.DB, password string) error {
	if password == "" {
		log.Println("⚠️ skip seeding default users: missing SEED_PASSWORD")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, u := range defaultUsers {
		var count int64
		if err := db.Model(&entity.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		u.Password = string(hash)
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("📦 seeded user:", u.Username)
	}
	return nil
}
