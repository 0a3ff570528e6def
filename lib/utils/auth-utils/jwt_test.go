package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/config"
	"job-board-backend/models"
)

func initTestConfig() {
	config.InitConfig()
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
}

func TestToken(t *testing.T) {
	initTestConfig()
	t.Run(`issued token carries user claims`, func(t *testing.T) {
		token, err := GetToken("user-1", "Иван Иванов", models.UserRoleRecruiter)
		require.Nil(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseToken(token)
		require.Nil(t, err)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "Иван Иванов", claims["name"])
		require.Equal(t, string(models.UserRoleRecruiter), claims["role"])
		require.NotNil(t, claims["exp"])
	})

	t.Run(`token signed with another secret is rejected`, func(t *testing.T) {
		token, err := GetToken("user-1", "Иван Иванов", models.UserRoleJobSeeker)
		require.Nil(t, err)

		config.Conf.Auth.JWTSecret = "another-secret"
		defer func() { config.Conf.Auth.JWTSecret = "test-secret" }()
		_, err = ParseToken(token)
		require.NotNil(t, err)
	})
}

func TestPassword(t *testing.T) {
	t.Run(`hash verifies original password only`, func(t *testing.T) {
		hash, err := HashPassword("qwerty123")
		require.Nil(t, err)
		require.NotEqual(t, "qwerty123", hash)
		require.Equal(t, true, CheckPassword(hash, "qwerty123"))
		require.Equal(t, false, CheckPassword(hash, "qwerty124"))
	})

	t.Run(`same password hashes differently`, func(t *testing.T) {
		hash1, err := HashPassword("qwerty123")
		require.Nil(t, err)
		hash2, err := HashPassword("qwerty123")
		require.Nil(t, err)
		require.NotEqual(t, hash1, hash2)
	})
}
