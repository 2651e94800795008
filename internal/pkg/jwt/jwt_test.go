//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"healthsched/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour, 30*time.Minute)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newService()
	subjectID := uuid.New()

	token, duration, err := svc.GenerateToken(subjectID, "dr@clinic.example", jwt.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, duration)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, "dr@clinic.example", claims.Email)
	assert.Equal(t, jwt.RoleProvider.String(), claims.Role)
}

func TestGenerateTokenRoleDurations(t *testing.T) {
	svc := newService()

	_, providerDur, err := svc.GenerateToken(uuid.New(), "p@clinic.example", jwt.RoleProvider)
	require.NoError(t, err)
	_, patientDur, err := svc.GenerateToken(uuid.New(), "q@mail.example", jwt.RolePatient)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, providerDur)
	assert.Equal(t, 30*time.Minute, patientDur)
}

func TestValidateToken(t *testing.T) {
	t.Run("garbage input", func(t *testing.T) {
		_, err := newService().ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		token, _, err := jwt.NewService("other-secret", time.Hour, time.Hour).
			GenerateToken(uuid.New(), "p@clinic.example", jwt.RoleProvider)
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute, -time.Minute)
		token, _, err := expired.GenerateToken(uuid.New(), "p@clinic.example", jwt.RoleProvider)
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
