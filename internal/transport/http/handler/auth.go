package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gopherfeed/internal/app"
	"gopherfeed/internal/model"
	"gopherfeed/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	result, err := h.authService.Signup(app.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingFields),
			errors.Is(err, app.ErrUsernameTooShort),
			errors.Is(err, app.ErrPasswordTooShort),
			errors.Is(err, app.ErrPasswordTooLong),
			errors.Is(err, app.ErrUserExists):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": result.Token,
		"user":  publicUser(result.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingCredentials):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  publicUser(result.User),
	})
}

// Verify re-materializes the user behind a valid token. The token can
// outlive the account, hence the 404 branch.
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, _, ok := identityFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Access token required")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": publicUser(user)})
}

func publicUser(user *model.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}
}
