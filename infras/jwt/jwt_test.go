package jwt_test

import (
	"testing"
	"todos/config"
	"todos/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "todos"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 20
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.New(newConfig())

	pair, err := service.GenerateTokenPair(42, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(1200), pair.ExpiresIn)

	claims, err := service.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "todos", claims.Issuer)
	assert.Equal(t, claims.ID, claims.TokenID)
	assert.NotEmpty(t, claims.TokenID)

	refresh, err := service.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, refresh.Type)
	assert.NotEqual(t, claims.TokenID, refresh.TokenID)
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := newConfig()
	service := jwt.New(cfg)

	pair, err := service.GenerateTokenPair(1, "bob")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token", jwt.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		other := newConfig()
		other.JWT.AccessSecret = "another-secret"

		_, err := jwt.New(other).ValidateToken(pair.AccessToken, jwt.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("refresh token used as access token", func(t *testing.T) {
		_, err := service.ValidateToken(pair.RefreshToken, jwt.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong type with shared secret", func(t *testing.T) {
		shared := newConfig()
		shared.JWT.RefreshSecret = shared.JWT.AccessSecret
		sharedService := jwt.New(shared)

		sharedPair, err := sharedService.GenerateTokenPair(1, "bob")
		require.NoError(t, err)

		_, err = sharedService.ValidateToken(sharedPair.RefreshToken, jwt.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidClaim)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newConfig()
		expired.JWT.AccessExpireMin = -1
		expiredService := jwt.New(expired)

		expiredPair, err := expiredService.GenerateTokenPair(1, "bob")
		require.NoError(t, err)

		_, err = expiredService.ValidateToken(expiredPair.AccessToken, jwt.AccessToken)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := service.ValidateToken(pair.AccessToken, jwt.TokenType("other"))
		require.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "empty", header: "", wantErr: jwt.ErrMissingToken},
		{name: "basic scheme", header: "Basic abc", wantErr: jwt.ErrMalformed},
		{name: "no token", header: "Bearer   ", wantErr: jwt.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
