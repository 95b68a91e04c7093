package handlers

import (
	"net/http"
	"net/url"

	"coffeemap/config"
	"coffeemap/models"
	"coffeemap/services/ratelimit"
	"coffeemap/services/user"
	"coffeemap/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// AuthHandler serves sign-in, session and sign-out endpoints.
type AuthHandler struct {
	UserService user.UserService
	Limiter     *ratelimit.Limiter
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(userService user.UserService, limiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{UserService: userService, Limiter: limiter}
}

// oauthConfig builds the Google OAuth config for the callback flow.
// Returns nil when the OAuth client is not configured.
func oauthConfig() *oauth2.Config {
	cfg := config.AppConfig
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleSignInHandler handles POST /api/auth/google. The client sends
// the Google ID token it obtained plus, optionally, the ID of its
// previous anonymous session so favorites follow the account.
func (h *AuthHandler) GoogleSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		IDToken string `json:"id_token" binding:"required"`
		AnonID  string `json:"anon_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.SignInWithGoogle(req.IDToken, req.AnonID)
	if err != nil {
		logger.Error("Google sign-in failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AnonymousSignInHandler handles POST /api/auth/anonymous.
func (h *AuthHandler) AnonymousSignInHandler(c *gin.Context) {
	resp, err := h.UserService.SignInAnonymously()
	if err != nil {
		utils.GetLogger().Error("Anonymous sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// OAuthCallbackHandler handles GET /auth/callback. It exchanges the
// authorization code for tokens, signs the user in with the resulting
// ID token and redirects the browser back to the frontend with the
// outcome in the query string.
func (h *AuthHandler) OAuthCallbackHandler(c *gin.Context) {
	logger := utils.GetLogger()
	frontend := config.AppConfig.FrontendURL

	redirectWithError := func(message string) {
		c.Redirect(http.StatusFound, frontend+"/?auth=error&message="+url.QueryEscape(message))
	}

	if errParam := c.Query("error"); errParam != "" {
		logger.Warn("OAuth callback returned error", zap.String("error", errParam))
		redirectWithError(errParam)
		return
	}

	code := c.Query("code")
	if code == "" {
		redirectWithError("missing authorization code")
		return
	}

	conf := oauthConfig()
	if conf == nil {
		redirectWithError("oauth not configured")
		return
	}

	token, err := conf.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		redirectWithError("code exchange failed")
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		redirectWithError("no identity token returned")
		return
	}

	resp, err := h.UserService.SignInWithGoogle(idToken, c.Query("anon_id"))
	if err != nil {
		logger.Error("OAuth sign-in failed", zap.Error(err))
		redirectWithError("sign-in failed")
		return
	}

	c.Redirect(http.StatusFound, frontend+"/?auth=success&token="+url.QueryEscape(resp.Token))
}

// SessionHandler handles GET /api/auth/session.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SignOutHandler handles POST /api/auth/signout. The backend identity
// persists; only the session token is revoked.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}
	token := authHeader[len(prefix):]

	if err := h.UserService.SignOut(token); err != nil {
		utils.GetLogger().Error("Sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// UpdateProfileHandler handles PATCH /api/users/me.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	usr := currentUser(c)
	if usr == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sign in to update your profile"})
		return
	}

	allowed, err := h.Limiter.Allow(c.Request.Context(), usr.ID, ratelimit.ActionProfileUpdate)
	if err != nil {
		logger.Error("Rate limit check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate limit"})
		return
	}
	if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Profile update limit reached. Try again later."})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.UserService.UpdateProfile(usr.ID, req)
	if err != nil {
		logger.Error("Profile update failed", zap.String("userID", usr.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
