package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Creates a student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.MessageResponse "Student registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Name, email and password required"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /auth/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	c.register(ctx, models.RoleStudent, "Student registered successfully")
}

// RegisterMentor handles mentor registration. Mentors start unapproved.
// @Summary Register a mentor
// @Description Creates a mentor account that an admin must approve before it can add chapters
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Mentor registration information"
// @Success 201 {object} dto.MessageResponse "Mentor registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Name, email and password required"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /auth/register/mentor [post]
func (c *AuthController) RegisterMentor(ctx *gin.Context) {
	c.register(ctx, models.RoleMentor, "Mentor registered successfully")
}

func (c *AuthController) register(ctx *gin.Context, role models.Role, message string) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req, "Name, email and password required") {
		c.logger.Warn().Str("role", string(role)).Msg("Invalid registration request payload")
		return
	}

	user, err := c.authService.Register(ctx.Request.Context(), &req, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User registered")
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: message})
}

// Login handles user login
// @Summary User login
// @Description Authenticates a student, mentor or admin and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Email and password required"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req, "Email and password required") {
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
