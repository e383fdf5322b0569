package services

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"github.com/681102815-lab/CondoCare-backend/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("Report not found")

// สถานะเริ่มต้นของรายการแจ้งซ่อม
const StatusPendingIntake = "รอรับเรื่อง"

type ReportService struct {
	repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) List() ([]entity.Report, error) {
	var reports []entity.Report
	if err := s.repo.FindAll(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Create สร้างรายการใหม่ ถ้าไม่ส่ง reportId มาจะใช้ timestamp (ms) แทน
func (s *ReportService) Create(reportID int64, category, detail, priority, owner string) (*entity.Report, error) {
	if reportID == 0 {
		reportID = time.Now().UnixMilli()
	}
	if priority == "" {
		priority = "medium"
	}

	report := &entity.Report{
		ReportID:   reportID,
		Category:   category,
		Priority:   priority,
		Detail:     detail,
		Status:     StatusPendingIntake,
		Owner:      owner,
		LikedBy:    []string{},
		DislikedBy: []string{},
		Comments:   []entity.Comment{},
	}
	if err := s.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// Delete ลบตามเลขอ้างอิงก่อน ถ้าไม่เจอลอง primary key (พฤติกรรมเดิมของระบบ)
func (s *ReportService) Delete(id string) error {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		if report, err := s.repo.FindByReportID(n); err == nil {
			return s.repo.Delete(report)
		}
		if n >= 0 {
			if report, err := s.repo.FindByPK(uint(n)); err == nil {
				return s.repo.Delete(report)
			}
		}
	}
	return ErrReportNotFound
}

func (s *ReportService) SetStatus(reportID int64, status string) (*entity.Report, error) {
	return s.findAndUpdate(reportID, func(report *entity.Report) {
		report.Status = status
	})
}

func (s *ReportService) SetFeedback(reportID int64, feedback string) (*entity.Report, error) {
	return s.findAndUpdate(reportID, func(report *entity.Report) {
		report.Feedback = feedback
	})
}

// ToggleLike กดซ้ำ = เอาออก, กด like ทั้งที่เคย dislike = ย้ายฝั่ง
func (s *ReportService) ToggleLike(reportID int64, username string) (*entity.Report, error) {
	return s.toggleVote(reportID, username, true)
}

func (s *ReportService) ToggleDislike(reportID int64, username string) (*entity.Report, error) {
	return s.toggleVote(reportID, username, false)
}

func (s *ReportService) toggleVote(reportID int64, username string, like bool) (*entity.Report, error) {
	var result *entity.Report
	// อ่าน-แก้-เขียนใน tx เดียว กัน lost update ตอนสอง request ชนกัน
	err := s.repo.Transaction(func(tx *repository.ReportRepository) error {
		report, err := tx.FindByReportID(reportID)
		if err != nil {
			return ErrReportNotFound
		}

		mine, theirs := &report.LikedBy, &report.DislikedBy
		mineCount, theirCount := &report.LikesCount, &report.DislikesCount
		if !like {
			mine, theirs = theirs, mine
			mineCount, theirCount = theirCount, mineCount
		}

		if slices.Contains(*mine, username) {
			*mine = remove(*mine, username)
			*mineCount = max(0, *mineCount-1)
		} else {
			*mine = append(*mine, username)
			*mineCount++
			if slices.Contains(*theirs, username) {
				*theirs = remove(*theirs, username)
				*theirCount = max(0, *theirCount-1)
			}
		}

		if err := tx.Save(report); err != nil {
			return err
		}
		result = report
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AddComment ต่อท้าย comment แล้วคืน report ทั้งก้อน
func (s *ReportService) AddComment(reportID int64, author, text string) (*entity.Report, error) {
	report, err := s.repo.FindByReportID(reportID)
	if err != nil {
		return nil, ErrReportNotFound
	}

	comment := &entity.Comment{
		CommentID: uuid.NewString(),
		ReportID:  report.ID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddComment(comment); err != nil {
		return nil, err
	}

	return s.repo.FindByReportID(reportID)
}

func (s *ReportService) findAndUpdate(reportID int64, mutate func(*entity.Report)) (*entity.Report, error) {
	report, err := s.repo.FindByReportID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	mutate(report)
	if err := s.repo.Save(report); err != nil {
		return nil, err
	}
	return report, nil
}

func remove(list []string, v string) []string {
	return slices.DeleteFunc(list, func(s string) bool { return s == v })
}
