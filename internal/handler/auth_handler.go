package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/jwtutil"
	"meroprofile/pkg/logger"
	"meroprofile/pkg/validate"
	"meroprofile/prometheus"
)

const resetTokenTTL = 1 * time.Hour

// AuthHandler implements account registration, sessions and password flows
type AuthHandler struct {
	jwt *jwtutil.JWTUtil
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(jwt *jwtutil.JWTUtil) *AuthHandler {
	return &AuthHandler{jwt: jwt}
}

// Register creates an account and its profile record
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.Email == "" || req.Password == "" {
		log.Error("Invalid registration data",
			zap.String("email", req.Email),
			zap.Bool("password_provided", req.Password != ""))
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	if !validate.IsValidEmail(req.Email) {
		log.Warn("Invalid email format", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_email")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email address"})
	}

	// Check if user already exists
	defer prometheus.TrackDBOperation("query")(time.Now())
	var existingUser model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&existingUser)
	if result.Error == nil {
		log.Error("User already exists", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		prometheus.RecordAuthError("password_hash_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&user); result.Error != nil {
		log.Error("Failed to create user", zap.Error(result.Error))
		prometheus.RecordAuthError("user_creation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered", zap.String("email", user.Email))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user": map[string]interface{}{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

// Login verifies credentials and issues a session token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		log.Error("User not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Error("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.FullName)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("email", user.Email), zap.Uint("user_id", user.ID))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}

// Logout ends the session. Tokens are stateless, so this only updates the
// active-token gauge; clients drop the token.
func (h *AuthHandler) Logout(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.DecreaseActiveTokens()

	email, _ := c.Get("email").(string)
	log.Info("User logged out", zap.String("email", email))
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// GetProfile returns the authenticated user's profile record
func (h *AuthHandler) GetProfile(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		log.Error("User not found", zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's display name
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		FullName string `json:"full_name"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse profile update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		log.Error("User not found", zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	user.FullName = req.FullName
	if result := database.GetDB().Save(&user); result.Error != nil {
		log.Error("Failed to update profile", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update profile"})
	}

	log.Info("Profile updated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the authenticated user's password
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse change-password request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "new password is required"})
	}

	var user model.User
	if result := database.GetDB().First(&user, userID); result.Error != nil {
		log.Error("User not found", zap.Uint("user_id", userID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		log.Warn("Wrong current password", zap.Uint("user_id", userID))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password is incorrect"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to change password"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Model(&user).Update("password", string(hashed)).Error; err != nil {
		log.Error("Failed to update password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to change password"})
	}

	log.Info("Password changed", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Password changed successfully"})
}

// ForgotPassword issues a single-use reset token. The response does not
// reveal whether the address exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	var user model.User
	if result := database.GetDB().Where("email = ?", req.Email).First(&user); result.Error != nil {
		log.Warn("Password reset requested for unknown email", zap.String("email", req.Email))
		return c.JSON(http.StatusOK, echo.Map{"message": "If the address exists, a reset link was sent"})
	}

	reset := model.PasswordReset{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&reset); result.Error != nil {
		log.Error("Failed to create reset token", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create reset token"})
	}

	// No mailer is wired in; the token is logged for the operator to deliver.
	log.Info("Password reset token issued",
		zap.Uint("user_id", user.ID),
		zap.String("token", reset.Token))
	return c.JSON(http.StatusOK, echo.Map{"message": "If the address exists, a reset link was sent"})
}

// ResetPassword consumes a reset token and sets a new password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "token and new password are required"})
	}

	var reset model.PasswordReset
	result := database.GetDB().
		Where("token = ? AND used_at IS NULL AND expires_at >= ?", req.Token, time.Now()).
		First(&reset)
	if result.Error != nil {
		log.Warn("Invalid or expired reset token")
		prometheus.RecordAuthError("invalid_reset_token")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired reset token"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reset password"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Model(&model.User{}).
		Where("id = ?", reset.UserID).
		Update("password", string(hashed)).Error; err != nil {
		log.Error("Failed to update password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to reset password"})
	}

	now := time.Now()
	if err := database.GetDB().Model(&reset).Update("used_at", &now).Error; err != nil {
		log.Warn("Failed to mark reset token as used", zap.Error(err))
	}

	log.Info("Password reset completed", zap.Uint("user_id", reset.UserID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Password reset successfully"})
}
