package service

import (
	"edu_course_backend/internal/model"
	"edu_course_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserWithRoleProfile(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
		Phone:    "13800000000",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Equal(t, model.RoleStudent, user.Role)

	// 档案与用户同事务创建，注册成功即可查到
	profile, err := env.user.StudentProfileOf(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "13800000000", profile.Phone)

	// 密码只存哈希
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterInstructorProfile(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.Register(RegisterInput{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "secret123",
		Role:            model.RoleInstructor,
		Expertise:       "Distributed Systems",
		YearsExperience: 8,
	})
	require.NoError(t, err)

	profile, err := env.user.InstructorProfileOf(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", profile.Expertise)
	assert.Equal(t, 8, profile.YearsExperience)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	_, err = env.auth.Register(RegisterInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	_, err = env.auth.Register(RegisterInput{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	assert.ErrorIs(t, err, util.ErrUsernameTaken)

	var count int64
	env.db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)

	token, err := env.auth.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "unit-test-secret-unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)

	_, err = env.auth.Login("alice@example.com", "wrong")
	assert.Error(t, err)

	_, err = env.auth.Login("nobody@example.com", "secret123")
	assert.Error(t, err)
}
