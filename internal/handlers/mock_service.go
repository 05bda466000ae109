package handlers

import (
	"context"

	"autfiles/internal/models"
	"autfiles/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser  *models.User
	signUpToken string
	signUpErr   error
	loginUser   *models.User
	loginToken  string
	loginErr    error
	parseID     string
	parseErr    error

	lastSignUpName     string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastLoginEmail     string
	lastLoginPassword  string
	lastParseToken     string

	signUpCalls int
	loginCalls  int
}

func (m *mockAuth) SignUp(ctx context.Context, name, email, password string) (*models.User, string, error) {
	m.signUpCalls++
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpToken, m.signUpErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	m.loginCalls++
	m.lastLoginEmail = email
	m.lastLoginPassword = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// ---- Shared Test Helpers ----

var testAllowedOrigins = []string{"http://localhost:3000"}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, testAllowedOrigins)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
