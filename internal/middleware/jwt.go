package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/config"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type JwtService struct {
	secret      []byte
	expiration  time.Duration
	userService *user.Service
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJwtService(cfg config.JWTConfig, userService *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	if cfg.ExpirationHours <= 0 {
		cfg.ExpirationHours = 24
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		expiration:  time.Duration(cfg.ExpirationHours) * time.Hour,
		userService: userService,
	}, nil
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.ErrUnauthorized.WithError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}

	return claims, nil
}

func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(appErrors.ErrUnauthorized.StatusCode, gin.H{
				"error":   appErrors.ErrUnauthorized.Code,
				"message": "Missing Authorization header",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.JSON(appErrors.ErrUnauthorized.StatusCode, gin.H{
				"error":   appErrors.ErrUnauthorized.Code,
				"message": "Authorization header must use the Bearer scheme",
			})
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			appErr := appErrors.FromError(err)
			c.JSON(appErr.StatusCode, gin.H{
				"error":   appErr.Code,
				"message": appErr.Message,
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}
