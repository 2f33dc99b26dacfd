package handlers

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/config"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/mail"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/validators"
)

const verificationCodeTTL = 15 * time.Minute

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	mailer *mail.Mailer
	logger zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer *mail.Mailer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		mailer: mailer,
		logger: logger.With().Str("component", "auth").Logger(),
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required,min=2"`
	LastName    string `json:"lastName" binding:"required,min=2"`
	BirthDate   string `json:"birthDate" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=MALE FEMALE OTHER"`
	PhoneNumber string `json:"phoneNumber"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Birth date must be YYYY-MM-DD.")
		return
	}

	var existing models.User
	lookupErr := h.db.Where("email = ?", email).First(&existing).Error

	if lookupErr == nil && existing.IsVerified {
		httperr.Conflict(c, "email_taken", "This email is already in use and verified. Please log in.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
		return
	}

	code := newVerificationCode()
	codeExpiry := time.Now().Add(verificationCodeTTL)

	role := models.RoleClient
	if h.config.AdminEmail != "" && email == strings.ToLower(h.config.AdminEmail) {
		role = models.RoleAdmin
	}

	user := models.User{
		Email:                     email,
		PasswordHash:              string(hashed),
		FirstName:                 req.FirstName,
		LastName:                  req.LastName,
		BirthDate:                 birthDate,
		Gender:                    req.Gender,
		PhoneNumber:               req.PhoneNumber,
		Role:                      role,
		IsVerified:                false,
		VerificationCode:          &code,
		VerificationCodeExpiresAt: &codeExpiry,
	}

	if lookupErr == nil {
		// Unverified account: registration overwrites the pending one.
		user.ID = existing.ID
		if err := h.db.Model(&existing).Updates(map[string]any{
			"password_hash":                user.PasswordHash,
			"first_name":                   user.FirstName,
			"last_name":                    user.LastName,
			"birth_date":                   user.BirthDate,
			"gender":                       user.Gender,
			"phone_number":                 user.PhoneNumber,
			"role":                         user.Role,
			"verification_code":            code,
			"verification_code_expires_at": codeExpiry,
		}).Error; err != nil {
			httperr.Internal(c, "failed_to_update_user", "Could not update the account.")
			return
		}
	} else {
		if err := h.db.Create(&user).Error; err != nil {
			httperr.Internal(c, "failed_to_create_user", "Could not create the account.")
			return
		}
	}

	// Fire-and-forget: a lost email never fails the registration.
	go func(email, firstName, code string) {
		if err := h.mailer.SendVerificationCode(email, firstName, code); err != nil {
			h.logger.Error().Err(err).Str("email", email).Msg("verification email failed")
		}
	}(user.Email, user.FirstName, code)

	c.JSON(http.StatusCreated, gin.H{
		"success":              true,
		"user":                 user,
		"requiresVerification": true,
	})
}

func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "user_not_found", "User not found.")
		return
	}

	if user.IsVerified {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account already verified"})
		return
	}

	if user.VerificationCode == nil || *user.VerificationCode != req.Code {
		httperr.Unauthorized(c, "invalid_code", "Incorrect code.")
		return
	}

	if user.VerificationCodeExpiresAt != nil && user.VerificationCodeExpiresAt.Before(time.Now()) {
		httperr.Unauthorized(c, "code_expired", "The code has expired.")
		return
	}

	if err := h.db.Model(&user).Updates(map[string]any{
		"is_verified":                  true,
		"verification_code":            nil,
		"verification_code_expires_at": nil,
	}).Error; err != nil {
		httperr.Internal(c, "failed_to_verify", "Could not verify the account.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account verified"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Incorrect email or password.")
		return
	}

	if !user.IsVerified {
		httperr.Unauthorized(c, "account_not_verified", "Account not verified. Please enter the code received by email.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Incorrect email or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not generate the session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"token":   token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func newVerificationCode() string {
	return fmt.Sprintf("%04d", 1000+rand.IntN(9000))
}
