package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Role identifies which side of the scheduling flow a token belongs to.
type Role string

const (
	RoleProvider Role = "provider"
	RolePatient  Role = "patient"
)

func (r Role) String() string {
	return string(r)
}

type Claims struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey        []byte
	providerDuration time.Duration
	patientDuration  time.Duration
}

func NewService(secretKey string, providerDuration, patientDuration time.Duration) *Service {
	return &Service{
		secretKey:        []byte(secretKey),
		providerDuration: providerDuration,
		patientDuration:  patientDuration,
	}
}

// GenerateToken issues an access token for the given subject. Providers and
// patients get different lifetimes.
func (s *Service) GenerateToken(subjectID uuid.UUID, email string, role Role) (string, time.Duration, error) {
	duration := s.patientDuration
	if role == RoleProvider {
		duration = s.providerDuration
	}

	now := time.Now()
	claims := Claims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", 0, err
	}
	return signed, duration, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
