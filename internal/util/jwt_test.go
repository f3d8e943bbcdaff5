package util

import (
	"edu_course_backend/internal/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtTestSecret = "unit-test-secret-unit-test-secret"

func testUser() *model.User {
	user := &model.User{
		Email: "alice@example.com",
		Role:  model.RoleStudent,
	}
	user.ID = 7
	return user
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, jwtTestSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(testUser(), jwtTestSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, jwtTestSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWTRejectsUnsignedToken(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   model.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "edu_course_backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// alg=none 的令牌即便声明合法也必须被拒绝
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT(unsigned, jwtTestSecret)
	assert.Error(t, err)
}

func TestParseJWTRequiresIssuer(t *testing.T) {
	claims := &Claims{
		UserID: 7,
		Role:   model.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(jwtTestSecret))
	require.NoError(t, err)

	_, err = ParseJWT(foreign, jwtTestSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
