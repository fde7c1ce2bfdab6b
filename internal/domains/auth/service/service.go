package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/internal/domains/auth/model/dto"
	userModel "todos/internal/domains/user/model"
	userRepo "todos/internal/domains/user/repository"
	"todos/shared"
	"todos/shared/cache"
	"todos/shared/constant"
	gDto "todos/shared/dto"
	"todos/shared/failure"
	"todos/shared/identity"
	"todos/shared/password"
	"todos/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const errUsernameTaken = "username already registered"

// Auth issues and revokes the bearer credentials the todo routes accept.
type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (int64, error)
	Token(ctx context.Context, req dto.TokenRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func usernameFilter(username string) gDto.FilterGroup {
	return shared.FilterByField(userModel.FieldUsername, username, userModel.TableName)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return 0, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return 0, failure.Conflict(errUsernameTaken) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if errors.Is(err, password.ErrTooLong) {
		// max=72 on the request counts runes, bcrypt counts bytes
		return 0, failure.Unprocessable(err.Error()) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword))
	if err != nil {
		// a concurrent registration can still win the unique index
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return 0, failure.Conflict(errUsernameTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("user_id", id).Str("username", req.Username).Msg("user registered")

	return id, nil
}

func (s *serviceImpl) Token(ctx context.Context, req dto.TokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Token")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, usernameFilter(req.Username))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		log.Warn().Str("username", req.Username).Msg("token request for unknown username")

		return res, failure.Unauthorized(constant.ResponseErrorLogin) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.HashedPassword); err != nil {
		log.Warn().Str("username", req.Username).Msg("token request with wrong password")

		return res, failure.Unauthorized(constant.ResponseErrorLogin) //nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Unauthorized(constant.ResponseErrorLogin) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")

		return res, failure.Unauthorized(constant.ResponseErrorCredentials) //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(claims.UserID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil || !user.Active {
		return res, failure.Unauthorized(constant.ResponseErrorCredentials) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout revokes the caller's access token until it would have expired anyway.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, ok := identity.FromContext(ctx)
	if !ok || caller.TokenID == "" {
		return failure.Unauthorized(constant.ResponseErrorCredentials) //nolint:wrapcheck
	}

	ttl := caller.ExpiresAt.Sub(timezone.Now())
	if ttl <= 0 {
		return nil
	}

	if err = s.cache.Save(ctx, cache.RevokedTokenKey(caller.TokenID), caller.Username, ttl); err != nil {
		log.Error().Err(err).Msg("failed to revoke token")

		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
