package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/weecompany/reservas-api/internal/config"
	"github.com/weecompany/reservas-api/internal/httperr"
	"github.com/weecompany/reservas-api/internal/httpresp"
	"github.com/weecompany/reservas-api/internal/ratelimit"
	ucauth "github.com/weecompany/reservas-api/internal/usecase/auth"
	"github.com/weecompany/reservas-api/internal/validators"
)

type AuthHandler struct {
	register *ucauth.RegisterUser
	login    *ucauth.LoginUser
	limiter  *ratelimit.LoginLimiter
	config   *config.Config
}

func NewAuthHandler(
	register *ucauth.RegisterUser,
	login *ucauth.LoginUser,
	limiter *ratelimit.LoginLimiter,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		limiter:  limiter,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	_, err := h.register.Execute(c.Request.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if httperr.IsBusiness(err, "email_already_registered") {
			httperr.BadRequest(c, "email_already_registered", "El correo ya está registrado.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Error al registrar el usuario.")
		return
	}

	httpresp.Text(c, "Usuario registrado exitosamente.")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !h.limiter.Allow(c.Request.Context(), email, c.ClientIP()) {
		httperr.TooManyRequests(c, "too_many_attempts", "Demasiados intentos. Intenta más tarde.")
		return
	}

	tok, err := h.login.Execute(c.Request.Context(), ucauth.LoginInput{
		Email:    email,
		Password: req.Password,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
			return
		}
		httperr.Internal(c, "failed_to_login", "Error al iniciar sesión.")
		return
	}

	httpresp.OK(c, gin.H{"token": tok})
}
