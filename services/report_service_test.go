package services

import (
	"strconv"
	"testing"
	"time"

	"github.com/681102815-lab/CondoCare-backend/repository"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	return NewReportService(repository.NewReportRepository(newTestDB(t)))
}

func TestCreateReportDefaults(t *testing.T) {
	s := newReportService(t)

	report, err := s.Create(0, "plumbing", "leak", "", "tech")
	require.NoError(t, err)
	require.NotZero(t, report.ReportID)
	require.Equal(t, "medium", report.Priority)
	require.Equal(t, StatusPendingIntake, report.Status)
	require.Equal(t, "tech", report.Owner)
	require.Equal(t, 0, report.LikesCount)
	require.Empty(t, report.LikedBy)
}

func TestCreateReportExplicitValues(t *testing.T) {
	s := newReportService(t)

	report, err := s.Create(42, "plumbing", "leak", "high", "tech")
	require.NoError(t, err)
	require.EqualValues(t, 42, report.ReportID)
	require.Equal(t, "high", report.Priority)
}

func TestListNewestFirst(t *testing.T) {
	s := newReportService(t)

	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = s.Create(2, "electric", "no power", "", "tech")
	require.NoError(t, err)

	reports, err := s.List()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.EqualValues(t, 2, reports[0].ReportID)
	require.EqualValues(t, 1, reports[1].ReportID)
}

func TestToggleLikeInvolutive(t *testing.T) {
	s := newReportService(t)
	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	report, err := s.ToggleLike(1, "101")
	require.NoError(t, err)
	require.Equal(t, 1, report.LikesCount)
	require.Contains(t, report.LikedBy, "101")

	report, err = s.ToggleLike(1, "101")
	require.NoError(t, err)
	require.Equal(t, 0, report.LikesCount)
	require.NotContains(t, report.LikedBy, "101")
}

func TestVoteExclusivity(t *testing.T) {
	s := newReportService(t)
	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	_, err = s.ToggleLike(1, "101")
	require.NoError(t, err)

	report, err := s.ToggleDislike(1, "101")
	require.NoError(t, err)
	require.Equal(t, 0, report.LikesCount)
	require.Equal(t, 1, report.DislikesCount)
	require.NotContains(t, report.LikedBy, "101")
	require.Contains(t, report.DislikedBy, "101")
}

func TestCountersNeverNegative(t *testing.T) {
	s := newReportService(t)
	report, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	// จำลองข้อมูลเพี้ยน: ชื่ออยู่ใน likedBy แต่ตัวนับเป็น 0 อยู่แล้ว
	report.LikedBy = []string{"101"}
	report.LikesCount = 0
	require.NoError(t, s.repo.Save(report))

	report, err = s.ToggleLike(1, "101")
	require.NoError(t, err)
	require.Equal(t, 0, report.LikesCount)
	require.Empty(t, report.LikedBy)
}

func TestVotesFromDifferentUsersAccumulate(t *testing.T) {
	s := newReportService(t)
	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	_, err = s.ToggleLike(1, "101")
	require.NoError(t, err)
	report, err := s.ToggleLike(1, "102")
	require.NoError(t, err)
	require.Equal(t, 2, report.LikesCount)
	require.ElementsMatch(t, []string{"101", "102"}, report.LikedBy)
}

func TestSetStatusAndFeedback(t *testing.T) {
	s := newReportService(t)
	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	report, err := s.SetStatus(1, "กำลังดำเนินการ")
	require.NoError(t, err)
	require.Equal(t, "กำลังดำเนินการ", report.Status)

	report, err = s.SetFeedback(1, "ซ่อมเรียบร้อย")
	require.NoError(t, err)
	require.Equal(t, "ซ่อมเรียบร้อย", report.Feedback)

	_, err = s.SetStatus(99, "x")
	require.ErrorIs(t, err, ErrReportNotFound)
	_, err = s.SetFeedback(99, "x")
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestAddComment(t *testing.T) {
	s := newReportService(t)
	_, err := s.Create(1, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	report, err := s.AddComment(1, "tech", "รับเรื่องแล้ว")
	require.NoError(t, err)
	require.Len(t, report.Comments, 1)
	require.Equal(t, "tech", report.Comments[0].Author)
	require.Equal(t, "รับเรื่องแล้ว", report.Comments[0].Text)
	require.NotEmpty(t, report.Comments[0].CommentID)

	_, err = s.AddComment(99, "tech", "x")
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestDeleteByReportIDThenByPK(t *testing.T) {
	s := newReportService(t)

	created, err := s.Create(9999, "plumbing", "leak", "", "tech")
	require.NoError(t, err)

	require.NoError(t, s.Delete("9999"))
	require.ErrorIs(t, s.Delete("9999"), ErrReportNotFound)

	// ลบด้วย primary key ภายใน เมื่อเลขนั้นไม่ใช่ reportId ของใคร
	created, err = s.Create(8888, "electric", "no power", "", "tech")
	require.NoError(t, err)
	require.NoError(t, s.Delete(strconv.FormatUint(uint64(created.ID), 10)))

	require.ErrorIs(t, s.Delete("not-a-number"), ErrReportNotFound)
}
