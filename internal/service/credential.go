package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the bearer token payload.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// CredentialService hashes passwords and issues and verifies bearer tokens.
type CredentialService struct {
	secret []byte
	expiry time.Duration
	cost   int
	now    func() time.Time
}

func NewCredentialService(jwtSecret string, jwtExpiry time.Duration, bcryptCost int) *CredentialService {
	return &CredentialService{
		secret: []byte(jwtSecret),
		expiry: jwtExpiry,
		cost:   bcryptCost,
		now:    time.Now,
	}
}

func (s *CredentialService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *CredentialService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *CredentialService) IssueToken(userID string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken returns the user id carried by a valid token. Expired,
// malformed and wrongly signed tokens all report ok=false.
func (s *CredentialService) VerifyToken(tokenString string) (string, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}

	return claims.UserID, true
}
