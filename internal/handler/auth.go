package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/middleware"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves register/login and the current-user lookup.
type AuthHandler struct {
	DB         *gorm.DB
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 7 * 24
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:         db,
		JWTSecret:  jwtSecret,
		TokenTTL:   time.Duration(ttlHours) * time.Hour,
		BcryptCost: bcryptCost,
	}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. The role is always "user"; the client cannot
// grant itself anything else.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดในการสมัคร")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusConflict, "อีเมลนี้ถูกใช้งานแล้ว")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดในการสมัคร")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     "user",
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดในการสมัคร")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.TrimSpace(req.Email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusUnauthorized, "ไม่พบผู้ใช้")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดในการเข้าสู่ระบบ")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "รหัสผ่านไม่ถูกต้อง")
		return
	}

	token, err := util.GenerateToken(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาดในการเข้าสู่ระบบ")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"role": user.Role,
		},
	})
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "ยังไม่ได้เข้าสู่ระบบ")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, "ยังไม่ได้เข้าสู่ระบบ")
		return
	}
	c.JSON(http.StatusOK, user)
}
