package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SignupRequest matches the body the web client posts to /signup.
type SignupRequest struct {
	DisplayName string `json:"displayName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest matches the body the web client posts to /login. The
// identifier field is named "email" for client compatibility but a
// username is accepted as well.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is what the client caches in local storage after login.
type LoginResponse struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	UserID uint   `json:"user_id"`
}

// Controller exposes the authentication HTTP endpoints.
type Controller struct {
	service  *Service
	recorder EventRecorder
}

// NewController creates the auth controller. The recorder may be nil to
// disable audit logging.
func NewController(service *Service, recorder EventRecorder) *Controller {
	return &Controller{
		service:  service,
		recorder: recorder,
	}
}

// RegisterRoutes mounts the auth endpoints on the router. Signup and login
// are public; isUserAuth sits behind the token middleware.
func (ctrl *Controller) RegisterRoutes(router *gin.Engine, middleware *Middleware) {
	router.POST("/signup", ctrl.Signup)
	router.POST("/login", ctrl.Login)
	router.GET("/isUserAuth", middleware.Handler(), ctrl.IsUserAuth)
}

// Signup handles POST /signup.
func (ctrl *Controller) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := ctrl.service.Signup(req.DisplayName, req.UserName, req.Email, req.Password)
	if ctrl.recorder != nil {
		var accountID uint
		if account != nil {
			accountID = account.ID
		}
		ctrl.recorder.RecordSignup(accountID, GetCorrelationID(c), c.ClientIP(), err)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "account already exists"})
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account store unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, account.Public())
}

// Login handles POST /login. "User not found" and "wrong password" return
// distinct status codes (400 vs 409), matching what the web client expects.
func (ctrl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	token, account, err := ctrl.service.Login(req.Email, req.Password)
	if ctrl.recorder != nil {
		var accountID uint
		if account != nil {
			accountID = account.ID
		}
		ctrl.recorder.RecordLogin(accountID, GetCorrelationID(c), c.ClientIP(), err)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrNoSuchAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user does not exist"})
		case errors.Is(err, ErrInvalidCredential):
			c.JSON(http.StatusConflict, gin.H{"error": "wrong password"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "account store unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:  token,
		Email:  account.Email,
		UserID: account.ID,
	})
}

// IsUserAuth handles GET /isUserAuth. The client probes it on page load to
// decide whether its cached token is still good.
func (ctrl *Controller) IsUserAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user_id":       GetAccountID(c),
	})
}
