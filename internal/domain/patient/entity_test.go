//go:build unit

package patient_test

import (
	"testing"
	"time"

	"healthsched/internal/domain/patient"
	"healthsched/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCanLogin(t *testing.T) {
	t.Run("active patient may log in", func(t *testing.T) {
		p, err := builder.NewPatientBuilder().Build()
		require.NoError(t, err)
		assert.NoError(t, p.CanLogin())
	})

	t.Run("deactivated patient may not", func(t *testing.T) {
		p, err := builder.NewPatientBuilder().Inactive().Build()
		require.NoError(t, err)
		assert.ErrorIs(t, p.CanLogin(), patient.ErrNotActive)
	})
}

func TestNewBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("must be in the past", func(t *testing.T) {
		_, err := patient.NewBirthDate(now.AddDate(0, 0, 1), now)
		assert.ErrorIs(t, err, patient.ErrBirthDateInFuture)

		_, err = patient.NewBirthDate(now, now)
		assert.ErrorIs(t, err, patient.ErrBirthDateInFuture)
	})

	t.Run("age thirteen boundary", func(t *testing.T) {
		// Thirteenth birthday exactly today is old enough.
		b, err := patient.NewBirthDate(now.AddDate(-13, 0, 0), now)
		require.NoError(t, err)
		assert.Equal(t, 2012, b.Value().Year())

		// One day short of thirteen is not.
		_, err = patient.NewBirthDate(now.AddDate(-13, 0, 1), now)
		assert.ErrorIs(t, err, patient.ErrTooYoung)
	})
}

func TestNewGender(t *testing.T) {
	t.Run("normalizes case", func(t *testing.T) {
		g, err := patient.NewGender("Prefer_Not_To_Say")
		require.NoError(t, err)
		assert.Equal(t, patient.GenderPreferNotToSay, g)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := patient.NewGender("unknown")
		assert.ErrorIs(t, err, patient.ErrInvalidGender)
	})
}
