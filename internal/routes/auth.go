package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/contracts"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/auth"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/user"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func toUserResponse(u *user.User) *contracts.UserResponse {
	return &contracts.UserResponse{
		Id:        u.Id.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req contracts.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	u, err := h.AuthService.Login(c.Request.Context(), auth.Login{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LoginResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req contracts.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := h.AuthService.Register(c.Request.Context(), u); err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.LoginResponse{
		Token: token,
		User:  toUserResponse(u),
	})
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var req contracts.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	u, err := h.AuthService.GoogleLogin(c.Request.Context(), req.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := h.JwtService.GenerateToken(u)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.GoogleAuthResponse{
		Message: "authenticated with Google",
		Token:   token,
		User:    toUserResponse(u),
	})
}
