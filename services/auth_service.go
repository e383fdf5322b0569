package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"github.com/681102815-lab/CondoCare-backend/repository"
	"github.com/681102815-lab/CondoCare-backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("username หรือ password ไม่ถูกต้อง")
	ErrUsernameTaken      = errors.New("username นี้ถูกใช้งานแล้ว")
	ErrUserNotFound       = errors.New("ไม่พบผู้ใช้")
	ErrWrongPassword      = errors.New("รหัสผ่านเดิมไม่ถูกต้อง")
	ErrSelfDelete         = errors.New("ไม่สามารถลบบัญชีของตัวเองได้")
	ErrInvalidRole        = errors.New("role ต้องเป็น admin, tech หรือ resident")
	ErrRoomNumberUsername = errors.New("username ของผู้พักต้องเป็นเลขห้องเท่านั้น")
	ErrPasswordTooShort   = errors.New("รหัสผ่านใหม่ต้องยาวอย่างน้อย 4 ตัวอักษร")
	ErrEmptyFirstName     = errors.New("กรุณากรอกชื่อ")
)

// username ของ resident ต้องเป็นเลขห้อง เช่น "101"
var roomNumberPattern = regexp.MustCompile(`^[0-9]+$`)

// AuthService จัดการ business logic ของการ login/จัดการผู้ใช้
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login ตรวจสอบ user + สร้าง JWT อายุ 24 ชม.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// เทียบรหัสผ่าน
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// ออก token
	token, err := utils.GenerateToken(user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// Register สร้าง user ใหม่ (admin เท่านั้น เช็ค role ที่ middleware)
func (s *AuthService) Register(username, password, role, firstName string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	switch role {
	case "admin", "tech", "resident":
	default:
		return nil, ErrInvalidRole
	}

	// ผู้พักใช้เลขห้องเป็น username
	if role == "resident" && !roomNumberPattern.MatchString(username) {
		return nil, ErrRoomNumberUsername
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	total, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		UserID:    fmt.Sprintf("U%03d", total+1),
		Username:  username,
		Password:  string(hashed),
		Role:      role,
		FirstName: strings.TrimSpace(firstName),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers คืนผู้ใช้ทั้งหมด (password ถูกตัดที่ json tag แล้ว)
func (s *AuthService) ListUsers() ([]entity.User, error) {
	var users []entity.User
	if err := s.userRepo.FindAll(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// ChangePassword เปลี่ยนรหัสผ่านของตัวเอง
func (s *AuthService) ChangePassword(username, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}
	if len(newPassword) < 4 {
		return ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.userRepo.Update(user.ID, map[string]any{"password": string(hashed)})
}

// UpdateName แก้ชื่อที่แสดงของตัวเอง
func (s *AuthService) UpdateName(username, firstName string) (string, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return "", ErrEmptyFirstName
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := s.userRepo.Update(user.ID, map[string]any{"first_name": firstName}); err != nil {
		return "", err
	}
	return firstName, nil
}

// DeleteUser ลบผู้ใช้ตาม userId (ห้ามลบตัวเอง)
func (s *AuthService) DeleteUser(callerUsername, userID string) error {
	target, err := s.userRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if target.Username == callerUsername {
		return ErrSelfDelete
	}

	return s.userRepo.Delete(target)
}
