package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barshopapp/barshop-api/internal/config"
	"github.com/barshopapp/barshop-api/internal/httperr"
	"github.com/barshopapp/barshop-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type InitializeAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Initialize creates the single admin account. It refuses to run once any
// user exists; the partial unique index on role='admin' backs this up at the
// storage layer.
func (h *AuthHandler) Initialize(c *gin.Context) {
	var req InitializeAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and password are required for the admin user.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error checking existing users.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "user_already_exists", "User already exists. Only one user is allowed in the system.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error creating admin user.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleAdmin,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "user_already_exists", "User already exists. Only one user is allowed in the system.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Error creating admin user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admin user created successfully.",
		"data": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates the admin. The username may be the literal "admin" or
// the admin's name or email, case-insensitive.
func (h *AuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_credentials", "Username and password are required.")
		return
	}

	var user models.User
	if err := h.db.Where("role = ?", models.RoleAdmin).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "no_admin_user", "No admin user found. Please initialize the admin user first.")
			return
		}
		httperr.Internal(c, "internal_error", "Error during login.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	validUsername := username == "admin" ||
		username == strings.ToLower(user.Name) ||
		username == strings.ToLower(user.Email)

	if !validUsername {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid username or password.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error during login.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"loginTime": time.Now().UTC().Format(time.RFC3339),
		},
		"token": token,
	})
}

// Status reports whether the admin account has been initialized.
func (h *AuthHandler) Status(c *gin.Context) {
	var user models.User
	err := h.db.Where("role = ?", models.RoleAdmin).First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"success":    true,
				"userExists": false,
			})
			return
		}
		httperr.Internal(c, "internal_error", "Error checking user status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"userExists": true,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
			"phone": user.Phone,
		},
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
