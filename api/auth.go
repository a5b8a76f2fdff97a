package api

import (
	"errors"
	"fmt"
	"log"
	"time"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resendInterval 两次获取确认码的最小间隔
const resendInterval = time.Minute

var errSendConfirmation = errors.New("确认码邮件发送失败")

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg          *config.Config
	emailService *service.EmailService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"testuser"`
	Email    string `json:"email" binding:"required,email,max=100" example:"test@example.com"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
}

// LoginRequest 登录请求（支持用户名或邮箱）
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"testuser"` // 可为用户名或邮箱
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	UserInfo  models.User `json:"user_info"`
}

// ConfirmRequest 邮箱确认请求
type ConfirmRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
	Code  string `json:"code" binding:"required,len=6" example:"123456"`
}

// ResendCodeRequest 重新获取确认码请求
type ResendCodeRequest struct {
	Email string `json:"email" binding:"required,email" example:"test@example.com"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户账号。开启邮箱确认时账号处于 pending 状态，需要通过邮件中的确认码激活后才能登录。用户名或邮箱已存在时返回 409。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=models.User} "注册成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "用户已存在"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 检查用户名或邮箱是否已存在
	var existingUser models.User
	err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existingUser).Error
	if err == nil {
		Conflict(c, "用户已存在")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		InternalError(c, SafeErrorMessage(err, "注册失败"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	user := models.User{
		Username: req.Username,
		Password: string(hashedPassword),
		Email:    req.Email,
		Status:   models.UserStatusActive,
	}
	if h.cfg.Auth.RequireEmailConfirmation {
		user.Status = models.UserStatusPending
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "用户已存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建用户失败"))
		return
	}
	log.Printf("新用户注册: %s (id=%d, status=%s)", user.Username, user.ID, user.Status)

	if user.IsActive() {
		SuccessWithMessage(c, "注册成功", user)
		return
	}

	if err := h.issueConfirmation(&user); err != nil {
		log.Printf("[%s] 发送确认码失败 user=%d: %v", middleware.GetRequestID(c), user.ID, err)
		SuccessWithMessage(c, "注册成功，但确认码发送失败，请稍后重新获取", user)
		return
	}
	SuccessWithMessage(c, "注册成功，确认码已发送至邮箱", user)
}

// Confirm 确认邮箱
// @Summary 确认邮箱
// @Description 使用邮件中的 6 位确认码激活账号
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body ConfirmRequest true "确认信息"
// @Success 200 {object} Response "确认成功"
// @Failure 400 {object} Response "确认码错误或已过期"
// @Router /api/v1/auth/confirm [post]
func (h *AuthHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		BadRequest(c, "确认码错误")
		return
	}
	if user.IsActive() {
		SuccessWithMessage(c, "邮箱已确认", nil)
		return
	}

	var verification models.EmailVerification
	if err := database.DB.Where("user_id = ? AND code = ? AND purpose = ?",
		user.ID, req.Code, models.VerificationPurposeConfirm).Order("id DESC").First(&verification).Error; err != nil {
		BadRequest(c, "确认码错误")
		return
	}
	if !verification.IsValid() {
		if verification.Used {
			BadRequest(c, "确认码已被使用")
		} else {
			BadRequest(c, "确认码已过期，请重新获取")
		}
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&verification).Update("used", true).Error; err != nil {
			return err
		}
		return tx.Model(&user).Update("status", models.UserStatusActive).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "确认失败"))
		return
	}

	log.Printf("用户 %s 邮箱已确认", user.Username)
	SuccessWithMessage(c, "邮箱确认成功，请登录", nil)
}

// ResendCode 重新获取确认码
// @Summary 重新获取确认码
// @Description 为尚未激活的账号重新发送确认码，1 分钟内只能获取一次
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body ResendCodeRequest true "邮箱"
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/resend-code [post]
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请输入有效的邮箱地址")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		BadRequest(c, "该邮箱未注册")
		return
	}
	if user.IsActive() {
		BadRequest(c, "邮箱已确认，无需重新获取")
		return
	}

	// 距离上次发送不到 1 分钟则拒绝
	var last models.EmailVerification
	if err := database.DB.Where("user_id = ? AND purpose = ? AND used = ?",
		user.ID, models.VerificationPurposeConfirm, false).Order("id DESC").First(&last).Error; err == nil {
		if time.Since(last.CreatedAt) < resendInterval {
			TooManyRequests(c, "请求过于频繁，请稍后再试")
			return
		}
	}

	if err := h.issueConfirmation(&user); err != nil {
		log.Printf("[%s] 发送确认码失败 user=%d: %v", middleware.GetRequestID(c), user.ID, err)
		InternalError(c, SafeErrorMessage(err, errSendConfirmation.Error()))
		return
	}
	SuccessWithMessage(c, "确认码已发送，请查收邮件", nil)
}

// issueConfirmation 作废旧确认码，生成新码并发送邮件
func (h *AuthHandler) issueConfirmation(user *models.User) error {
	if err := database.DB.Model(&models.EmailVerification{}).
		Where("user_id = ? AND purpose = ? AND used = ?", user.ID, models.VerificationPurposeConfirm, false).
		Update("used", true).Error; err != nil {
		return fmt.Errorf("作废旧确认码失败: %w", err)
	}

	verification, err := models.NewConfirmation(user, time.Now())
	if err != nil {
		return fmt.Errorf("生成确认码失败: %w", err)
	}
	if err := database.DB.Create(verification).Error; err != nil {
		return fmt.Errorf("保存确认码失败: %w", err)
	}

	if err := h.emailService.SendConfirmationEmail(user.Email, user.Username, verification.Code); err != nil {
		return fmt.Errorf("%w: %v", errSendConfirmation, err)
	}
	return nil
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户登录获取 JWT token，邮箱未确认的账号无法登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Failure 403 {object} Response "邮箱未验证"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 查找用户（支持用户名或邮箱）
	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if !user.IsActive() {
		Forbidden(c, "邮箱未验证")
		return
	}

	ttl := h.cfg.JWT.ExpireTime
	token, err := middleware.GenerateToken(user.ID, user.Username, ttl)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		UserInfo:  user,
	})
}

// Logout 退出登录
// @Summary 退出登录
// @Description 注销当前 token，之后该 token 不能再使用
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "退出成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.RevokeToken(middleware.GetCurrentClaims(c))
	SuccessWithMessage(c, "已退出登录", nil)
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户的详细信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	Success(c, user)
}
