package repository

import (
	"github.com/681102815-lab/CondoCare-backend/entity"
	"gorm.io/gorm"
)

// UserRepository รับผิดชอบการคุยกับตาราง users ใน DB เท่านั้น
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// หาผู้ใช้จาก username
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// หาผู้ใช้จาก userId (รหัส U001 ไม่ใช่ primary key)
func (r *UserRepository) FindByUserID(userID string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// นับจำนวน user ที่มี username ซ้ำ
func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// นับ user ทั้งหมด (ใช้ออกรหัส U%03d)
func (r *UserRepository) Count() (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// สร้าง user ใหม่
func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// อัปเดตบาง field ของ user
func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

// โหลด user ทั้งหมด
func (r *UserRepository) FindAll(out *[]entity.User) error {
	return r.DB.Order("user_id").Find(out).Error
}

// ลบ user ทิ้งจริง (ระบบนี้ไม่ใช้ soft delete)
func (r *UserRepository) Delete(user *entity.User) error {
	return r.DB.Delete(user).Error
}
