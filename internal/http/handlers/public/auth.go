package public

import (
	"errors"
	"strings"
	"time"

	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/auth"
	"github.com/TejasDharmale/Kata-Sweet-shop-management/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type accountClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (h *Handler) issueAccountToken(account *auth.Account) (string, error) {
	expireHours := h.Config.Session.ExpireHours
	if expireHours <= 0 {
		expireHours = 168
	}
	claims := accountClaims{
		Email: account.Email,
		Name:  account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Config.Session.Secret))
}

func (h *Handler) parseAccountToken(raw string) (*accountClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &accountClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.Config.Session.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*accountClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Register creates a storefront account and returns a token.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	account, err := h.AuthProvider.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			respondError(c, response.CodeConflict, "email already registered", nil)
			return
		}
		respondError(c, response.CodeInternal, "register failed", err)
		return
	}
	token, err := h.issueAccountToken(account)
	if err != nil {
		respondError(c, response.CodeInternal, "token issue failed", err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": account})
}

// Login authenticates an account and returns a token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	account, err := h.AuthProvider.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid email or password")
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}
	token, err := h.issueAccountToken(account)
	if err != nil {
		respondError(c, response.CodeInternal, "token issue failed", err)
		return
	}
	response.Success(c, gin.H{"token": token, "user": account})
}

// Me returns the account behind the bearer token.
func (h *Handler) Me(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		response.Unauthorized(c, "missing bearer token")
		return
	}
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		response.Unauthorized(c, "missing bearer token")
		return
	}
	claims, err := h.parseAccountToken(raw)
	if err != nil {
		response.Unauthorized(c, "invalid token")
		return
	}
	response.Success(c, auth.Account{Email: claims.Email, Name: claims.Name})
}
