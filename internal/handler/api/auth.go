package api

import (
	"errors"
	"net/http"

	reqdto "healthsched/internal/handler/dto/request"
	resdto "healthsched/internal/handler/dto/response"
	"healthsched/internal/handler/httperr"
	"healthsched/internal/usecase/commands"
	"healthsched/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	providers commands.ProviderCommands
	patients  commands.PatientCommands
}

func NewAuthHandler(providers commands.ProviderCommands, patients commands.PatientCommands) *AuthHandler {
	return &AuthHandler{
		providers: providers,
		patients:  patients,
	}
}

// @Summary Register provider
// @Description Register a new healthcare provider account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterProviderRequest true "Provider registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /auth/providers/register [post]
func (h *AuthHandler) RegisterProvider(c *gin.Context) {
	var req reqdto.RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.providers.Register(c.Request.Context(), req)
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary Provider login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Router /auth/providers/login [post]
func (h *AuthHandler) LoginProvider(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.providers.Login(c.Request.Context(), req)
	if err != nil {
		respondLoginError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Register patient
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterPatientRequest true "Patient registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /auth/patients/register [post]
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req reqdto.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.patients.Register(c.Request.Context(), req)
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegisterResult(result))
}

// @Summary Patient login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]any
// @Router /auth/patients/login [post]
func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.patients.Login(c.Request.Context(), req)
	if err != nil {
		respondLoginError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// respondRegisterError maps registration failures to statuses. Field-level
// detail rides along when validation or duplicate checks produced it.
func respondRegisterError(c *gin.Context, err error) {
	fields, _ := shared.AsFieldErrors(err)

	switch {
	case errors.Is(err, commands.ErrDuplicateAccount):
		httperr.AbortWithError(c, http.StatusConflict, err, "Account already exists", fields)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func respondLoginError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errors.Is(err, commands.ErrAccountNotVerified):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is pending verification", nil)
	case errors.Is(err, commands.ErrAccountInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
