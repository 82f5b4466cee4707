package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esporte-social/internal/auth"
	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
	"esporte-social/internal/teams"
	"esporte-social/internal/telemetry"
)

// AuthHandler manages account registration and sessions.
type AuthHandler struct {
	users  repositories.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.JWTManager
	audit  *telemetry.AuditEmitter
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users repositories.UserRepository, hasher *auth.PasswordHasher, tokens *auth.JWTManager, audit *telemetry.AuditEmitter) *AuthHandler {
	return &AuthHandler{users: users, hasher: hasher, tokens: tokens, audit: audit}
}

// Register creates an account and returns a fresh access token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Username          string `json:"username" binding:"required"`
		Email             string `json:"email" binding:"required,email"`
		Password          string `json:"password" binding:"required,min=6"`
		UserType          string `json:"user_type" binding:"required"`
		FavoriteTeam      string `json:"favorite_team"`
		EstablishmentName string `json:"establishment_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.emitAudit(c, "ERROR", "invalid registration payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserType != models.UserTypeFan && req.UserType != models.UserTypeEstablishment {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tipo de usuário inválido"})
		return
	}
	if req.UserType == models.UserTypeEstablishment && req.EstablishmentName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nome do estabelecimento é obrigatório"})
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível criar a conta"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), repositories.NewUser{
		Username:          req.Username,
		Email:             req.Email,
		PasswordHash:      hash,
		UserType:          req.UserType,
		FavoriteTeam:      teams.FormatTeamName(req.FavoriteTeam),
		EstablishmentName: req.EstablishmentName,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email ou nome de usuário já cadastrado"})
			return
		}
		h.emitAudit(c, "ERROR", "internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível criar a conta"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível criar a conta"})
		return
	}

	c.Set("userID", user.ID)
	h.emitAudit(c, "INFO", "Account created")
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login validates credentials and returns an access token. Unknown email
// and wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			h.emitAudit(c, "WARN", "login failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais inválidas"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível entrar"})
		return
	}
	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		h.emitAudit(c, "WARN", "login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "credenciais inválidas"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível entrar"})
		return
	}

	c.Set("userID", user.ID)
	h.emitAudit(c, "INFO", "Login")
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout acknowledges the client discarding its token. Tokens are stateless
// so there is nothing to revoke server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.emitAudit(c, "INFO", "Logout")
	c.JSON(http.StatusOK, gin.H{"message": "sessão encerrada"})
}

// ListTeams returns the team names selectable on registration.
func (h *AuthHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": teams.Names()})
}

func (h *AuthHandler) emitAudit(c *gin.Context, level, text string) {
	if h.audit == nil {
		return
	}
	h.audit.Emit(c.Request.Context(), level, text, requestIDFromContext(c), userIDFromContext(c))
}
