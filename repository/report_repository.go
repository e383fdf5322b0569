package repository

import (
	"github.com/681102815-lab/CondoCare-backend/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(report *entity.Report) error {
	return r.db.Create(report).Error
}

// รายการทั้งหมด ใหม่สุดก่อน
func (r *ReportRepository) FindAll(out *[]entity.Report) error {
	return r.db.Preload("Comments").Order("created_at DESC").Find(out).Error
}

// หาโดยเลขอ้างอิงภายนอก (reportId)
func (r *ReportRepository) FindByReportID(reportID int64) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.Preload("Comments").Where("report_id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// หาโดย primary key (fallback ตอนลบ)
func (r *ReportRepository) FindByPK(id uint) (*entity.Report, error) {
	var report entity.Report
	if err := r.db.Preload("Comments").First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// Save เขียนเฉพาะตัว report ไม่แตะ comments ที่ preload มา
func (r *ReportRepository) Save(report *entity.Report) error {
	return r.db.Omit(clause.Associations).Save(report).Error
}

func (r *ReportRepository) Delete(report *entity.Report) error {
	return r.db.Delete(report).Error
}

func (r *ReportRepository) AddComment(comment *entity.Comment) error {
	return r.db.Create(comment).Error
}

// Transaction รัน fn บน repository ที่ผูกกับ tx เดียวกัน
// ใช้กับ toggle like/dislike เพื่อกัน lost update ตอนอ่านแล้วเขียนทับ
func (r *ReportRepository) Transaction(fn func(tx *ReportRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ReportRepository{db: tx})
	})
}
