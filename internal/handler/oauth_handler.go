package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"meroprofile/internal/model"
	"meroprofile/pkg/database"
	"meroprofile/pkg/jwtutil"
	"meroprofile/pkg/logger"
	"meroprofile/pkg/oauth"
	"meroprofile/prometheus"
)

// OAuthHandler signs users in with an external provider access token
type OAuthHandler struct {
	jwt    *jwtutil.JWTUtil
	client *oauth.Client
}

// NewOAuthHandler creates an OAuthHandler
func NewOAuthHandler(jwt *jwtutil.JWTUtil, client *oauth.Client) *OAuthHandler {
	return &OAuthHandler{jwt: jwt, client: client}
}

// SignIn exchanges a provider access token for a session. The provider
// verifies the token; a matching account is created on first sign-in.
func (h *OAuthHandler) SignIn(c echo.Context) error {
	log := logger.FromEcho(c)
	provider := c.Param("provider")

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.Bind(&req); err != nil || req.AccessToken == "" {
		log.Error("Invalid OAuth sign-in request", zap.String("provider", provider))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "access_token is required"})
	}

	info, err := h.client.FetchUserInfo(provider, req.AccessToken)
	if err != nil {
		log.Warn("OAuth token verification failed",
			zap.String("provider", provider),
			zap.Error(err))
		prometheus.RecordAuthError("oauth_verification_failed")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "could not verify provider token"})
	}

	prometheus.OAuthLoginCounter.WithLabelValues(provider).Inc()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("email = ?", info.Email).First(&user)
	if result.Error != nil {
		user = model.User{
			Email:    info.Email,
			FullName: info.Name,
			Provider: provider,
		}
		if result := database.GetDB().Create(&user); result.Error != nil {
			log.Error("Failed to create OAuth user", zap.Error(result.Error))
			prometheus.RecordAuthError("user_creation_failed")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sign in failed"})
		}
		log.Info("OAuth user created",
			zap.String("provider", provider),
			zap.String("email", user.Email))
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.FullName)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in via OAuth",
		zap.String("provider", provider),
		zap.String("email", user.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": map[string]interface{}{
			"id":        user.ID,
			"email":     user.Email,
			"full_name": user.FullName,
		},
	})
}
