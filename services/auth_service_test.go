package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"github.com/681102815-lab/CondoCare-backend/repository"
	"github.com/681102815-lab/CondoCare-backend/utils"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Report{}, &entity.Comment{}))
	return db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour), db
}

func mustCreateUser(t *testing.T, db *gorm.DB, userID, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.User{
		UserID:    userID,
		Username:  username,
		Password:  string(hash),
		Role:      role,
		FirstName: username,
	}).Error)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "admin", "1234", "admin")

	token, user, err := s.Login("admin", "1234")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Role)

	claims, err := utils.ParseToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "admin", "1234", "admin")

	_, _, err := s.Login("admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Login("nobody", "1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken("admin", "admin", testSecret, -time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, testSecret)
	require.Error(t, err)
}

func TestTokenWithWrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateToken("admin", "admin", "other-secret", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseToken(token, testSecret)
	require.Error(t, err)
}

func TestRegisterResidentRequiresRoomNumber(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Register("bob", "1234", "resident", "Bob")
	require.ErrorIs(t, err, ErrRoomNumberUsername)

	user, err := s.Register("101", "1234", "resident", "ห้อง 101")
	require.NoError(t, err)
	require.Equal(t, "101", user.Username)
	require.Equal(t, "U001", user.UserID)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "tech", "1234", "tech")

	_, err := s.Register("tech", "1234", "tech", "ช่าง")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	s, _ := newAuthService(t)

	_, err := s.Register("guard", "1234", "security", "Guard")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterSequentialUserID(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "admin", "1234", "admin")

	user, err := s.Register("tech2", "1234", "tech", "ช่างสอง")
	require.NoError(t, err)
	require.Equal(t, "U002", user.UserID)
}

func TestChangePassword(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "tech", "1234", "tech")

	require.ErrorIs(t, s.ChangePassword("tech", "wrong", "5678"), ErrWrongPassword)
	require.ErrorIs(t, s.ChangePassword("tech", "1234", "abc"), ErrPasswordTooShort)
	require.ErrorIs(t, s.ChangePassword("nobody", "1234", "5678"), ErrUserNotFound)

	require.NoError(t, s.ChangePassword("tech", "1234", "5678"))
	_, _, err := s.Login("tech", "5678")
	require.NoError(t, err)
	_, _, err = s.Login("tech", "1234")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateName(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "tech", "1234", "tech")

	_, err := s.UpdateName("tech", "   ")
	require.ErrorIs(t, err, ErrEmptyFirstName)

	name, err := s.UpdateName("tech", "  ช่างใหม่ ")
	require.NoError(t, err)
	require.Equal(t, "ช่างใหม่", name)
}

func TestDeleteUser(t *testing.T) {
	s, db := newAuthService(t)
	mustCreateUser(t, db, "U001", "admin", "1234", "admin")
	mustCreateUser(t, db, "U002", "tech", "1234", "tech")

	require.ErrorIs(t, s.DeleteUser("admin", "U001"), ErrSelfDelete)
	require.ErrorIs(t, s.DeleteUser("admin", "U999"), ErrUserNotFound)

	require.NoError(t, s.DeleteUser("admin", "U002"))
	require.ErrorIs(t, s.DeleteUser("admin", "U002"), ErrUserNotFound)
}
