package controllers

import (
	"errors"
	"net/http"

	"github.com/681102815-lab/CondoCare-backend/entity"
	"github.com/681102815-lab/CondoCare-backend/pkg/resp"
	"github.com/681102815-lab/CondoCare-backend/services"
	"github.com/681102815-lab/CondoCare-backend/utils"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
}
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
type UpdateNameRequest struct {
	FirstName string `json:"firstName"`
}

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{authService: service}
}

// ตัด password ออกก่อนส่งกลับ (json:"-" ก็กันอยู่แล้ว แต่ shape ของ login คงตามเดิม)
func sanitizeUser(user *entity.User) gin.H {
	return gin.H{
		"id":        user.UserID,
		"userId":    user.UserID,
		"username":  user.Username,
		"role":      user.Role,
		"firstName": user.FirstName,
	}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		resp.BadRequest(c, "กรุณากรอก username และ password")
		return
	}

	token, user, err := a.authService.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  sanitizeUser(user),
	})
}

// GET /api/auth/users (admin)
func (a *AuthController) ListUsers(c *gin.Context) {
	users, err := a.authService.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// POST /api/auth/register (admin)
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" || req.Role == "" {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	user, err := a.authService.Register(req.Username, req.Password, req.Role, req.FirstName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInvalidRole), errors.Is(err, services.ErrRoomNumberUsername):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "สร้างผู้ใช้สำเร็จ",
		"user":    sanitizeUser(user),
	})
}

// PUT /api/auth/change-password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		resp.BadRequest(c, "กรุณากรอกรหัสผ่านเดิมและรหัสผ่านใหม่")
		return
	}

	err := a.authService.ChangePassword(utils.CurrentUsername(c), req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrWrongPassword):
			resp.Unauthorized(c, err.Error())
		case errors.Is(err, services.ErrPasswordTooShort):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "เปลี่ยนรหัสผ่านสำเร็จ"})
}

// PUT /api/auth/update-name
func (a *AuthController) UpdateName(c *gin.Context) {
	var req UpdateNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	firstName, err := a.authService.UpdateName(utils.CurrentUsername(c), req.FirstName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFirstName):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "แก้ไขชื่อสำเร็จ", "firstName": firstName})
}

// DELETE /api/auth/users/:userId (admin)
func (a *AuthController) DeleteUser(c *gin.Context) {
	err := a.authService.DeleteUser(utils.CurrentUsername(c), c.Param("userId"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDelete):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ลบผู้ใช้สำเร็จ"})
}
