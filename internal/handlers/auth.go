package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"autfiles/internal/models"
	"autfiles/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages. Credential mismatches deliberately share one
// generic message; field errors stay specific so callers can fix input.
const (
	msgAllFieldsRequired  = "All fields are required (name, email, password)"
	msgNameRequired       = "Name is required"
	msgEmailRequired      = "Email is required"
	msgPasswordRequired   = "Password is required"
	msgEmailPasswordReq   = "Email and password are required"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidBody        = "Invalid request body"
	msgServerError        = "Server error"
	msgUserCreated        = "User created successfully"
	msgLoginSuccessful    = "Login successful"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorJSON writes the failure envelope shared by every error response.
func errorJSON(c *gin.Context, httpCode int, msg string) {
	c.JSON(httpCode, gin.H{"success": false, "message": msg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		errorJSON(c, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// @Summary      Sign up
// @Description  Creates a user and returns a signed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signUpRequest  true  "Signup payload"
// @Success      201  {object}  map[string]interface{}  "success, token, userId, name, message"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	// The body is read raw so the all-fields-missing failure can echo the
	// payload exactly as received, unknown keys included.
	raw, err := c.GetRawData()
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		errorJSON(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	var req signUpRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		if h.log != nil {
			h.log.Infow("auth_bad_request_body", "err", err)
		}
		errorJSON(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	// Ordered field checks, each with its own terminal message.
	switch {
	case req.Name == "" && req.Email == "" && req.Password == "":
		var received map[string]any
		_ = json.Unmarshal(raw, &received)
		c.JSON(http.StatusBadRequest, gin.H{
			"success":  false,
			"message":  msgAllFieldsRequired,
			"received": received,
		})
		return
	case req.Name == "":
		errorJSON(c, http.StatusBadRequest, msgNameRequired)
		return
	case req.Email == "":
		errorJSON(c, http.StatusBadRequest, msgEmailRequired)
		return
	case req.Password == "":
		errorJSON(c, http.StatusBadRequest, msgPasswordRequired)
		return
	}

	user, token, err := h.services.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrUserExists) {
			if h.log != nil {
				h.log.Infow("auth_sign_up_conflict", "email", req.Email)
			}
			errorJSON(c, http.StatusBadRequest, msgUserExists)
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_sign_up_failed", "email", req.Email, "err", err)
		}
		errorJSON(c, http.StatusInternalServerError, msgServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"userId":  user.ID,
		"name":    user.Name,
		"message": msgUserCreated,
	})
}

// @Summary      Log in
// @Description  Verifies credentials and returns a fresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  logInRequest  true  "Login payload"
// @Success      200  {object}  map[string]interface{}  "success, token, userId, name, message"
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/login [post]
func (h *Handler) logIn(c *gin.Context) {
	var req logInRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if req.Email == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, msgEmailPasswordReq)
		return
	}

	user, token, err := h.services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password collapse into one response so
		// the endpoint cannot be used to enumerate accounts.
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_log_in_rejected", "email", req.Email)
			}
			errorJSON(c, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		if h.log != nil {
			h.log.Errorw("auth_log_in_failed", "email", req.Email, "err", err)
		}
		errorJSON(c, http.StatusInternalServerError, msgServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"userId":  user.ID,
		"name":    user.Name,
		"message": msgLoginSuccessful,
	})
}
