package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ทุก error ตอบรูปแบบเดียวกัน: {error: true, message: "..."}
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": true, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	Fail(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	Fail(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	Fail(c, http.StatusConflict, msg)
}
func ServerError(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, err.Error())
}
