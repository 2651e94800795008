//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"healthsched/internal/handler/api"
	reqdto "healthsched/internal/handler/dto/request"
	"healthsched/internal/pkg/errs"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/shared"
	"healthsched/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubProviderCommands struct {
	registerResult *commands.RegisterResult
	registerErr    error
	loginResult    *commands.LoginResult
	loginErr       error
}

func (s *stubProviderCommands) Register(_ context.Context, _ reqdto.RegisterProviderRequest) (*commands.RegisterResult, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerResult, nil
}

func (s *stubProviderCommands) Login(_ context.Context, _ reqdto.LoginRequest) (*commands.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

type stubPatientCommands struct {
	registerResult *commands.RegisterResult
	registerErr    error
	loginResult    *commands.LoginResult
	loginErr       error
}

func (s *stubPatientCommands) Register(_ context.Context, _ reqdto.RegisterPatientRequest) (*commands.RegisterResult, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registerResult, nil
}

func (s *stubPatientCommands) Login(_ context.Context, _ reqdto.LoginRequest) (*commands.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	providers *stubProviderCommands
	patients  *stubPatientCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.providers = &stubProviderCommands{}
	s.patients = &stubPatientCommands{}

	handler := api.NewAuthHandler(s.providers, s.patients)
	s.router.POST("/auth/providers/register", handler.RegisterProvider)
	s.router.POST("/auth/providers/login", handler.LoginProvider)
	s.router.POST("/auth/patients/register", handler.RegisterPatient)
	s.router.POST("/auth/patients/login", handler.LoginPatient)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerProviderBody() map[string]any {
	return map[string]any{
		"first_name":          "Jane",
		"last_name":           "Smith",
		"email":               "jane.smith@clinic.example",
		"phone_number":        "+1-555-0100",
		"password":            "longenough",
		"confirm_password":    "longenough",
		"specialization":      "cardiology",
		"license_number":      "MD-99887",
		"years_of_experience": 10,
		"clinic_address":      map[string]any{"street": "1 Main St", "city": "Springfield", "state": "IL", "zip": "62701"},
	}
}

func (s *AuthHandlerTestSuite) TestRegisterProvider() {
	url := "/auth/providers/register"

	s.Run("success: returns 201 with the new identity", func() {
		s.providers.registerErr = nil
		s.providers.registerResult = &commands.RegisterResult{
			ID:        uuid.New(),
			Email:     "jane.smith@clinic.example",
			FirstName: "Jane",
			LastName:  "Smith",
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerProviderBody(), "")

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "jane.smith@clinic.example")
	})

	s.Run("duplicate account: returns 409 with field map", func() {
		fields := shared.NewFieldErrors()
		fields.Add("email", "already registered")
		s.providers.registerErr = errs.Mark(fields, commands.ErrDuplicateAccount)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerProviderBody(), "")

		s.Equal(http.StatusConflict, rec.Code)
		s.Contains(rec.Body.String(), `"message":"Account already exists"`)
		s.Contains(rec.Body.String(), `"email":"already registered"`)
	})

	s.Run("validation failure: returns 400 with field map", func() {
		fields := shared.NewFieldErrors()
		fields.Add("specialization", "invalid specialization")
		s.providers.registerErr = errs.Mark(fields, commands.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerProviderBody(), "")

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "invalid specialization")
	})

	s.Run("missing required field: returns 400 before the usecase runs", func() {
		body := registerProviderBody()
		delete(body, "email")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLoginProvider() {
	url := "/auth/providers/login"
	body := map[string]any{"email": "jane.smith@clinic.example", "password": "longenough"}

	s.Run("success: returns the bearer token", func() {
		s.providers.loginErr = nil
		s.providers.loginResult = &commands.LoginResult{
			SubjectID:   uuid.New(),
			AccessToken: "signed-token",
			ExpiresIn:   time.Hour,
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"accessToken":"signed-token"`)
		s.Contains(rec.Body.String(), `"tokenType":"Bearer"`)
		s.Contains(rec.Body.String(), `"expiresIn":3600`)
	})

	s.Run("bad credentials: returns 401", func() {
		s.providers.loginErr = commands.ErrInvalidCredentials
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("pending verification: returns 403", func() {
		s.providers.loginErr = commands.ErrAccountNotVerified
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("deactivated account: returns 403", func() {
		s.providers.loginErr = commands.ErrAccountInactive
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed email: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"email": "nope", "password": "x"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLoginPatient() {
	url := "/auth/patients/login"
	body := map[string]any{"email": "pat.jones@example.com", "password": "longenough"}

	s.Run("success: returns the bearer token", func() {
		s.patients.loginErr = nil
		s.patients.loginResult = &commands.LoginResult{
			SubjectID:   uuid.New(),
			AccessToken: "signed-token",
			ExpiresIn:   30 * time.Minute,
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"expiresIn":1800`)
	})

	s.Run("bad credentials: returns 401", func() {
		s.patients.loginErr = commands.ErrInvalidCredentials
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
