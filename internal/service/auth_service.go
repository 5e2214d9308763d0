package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/entity"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
	"solar-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LoginThrottle counts failed logins per key.
type LoginThrottle interface {
	Allowed(key string) bool
	Fail(key string)
	Reset(key string)
}

type IAuthService interface {
	LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error)
	Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error)
	IsActiveAdmin(ctx context.Context, adminId uuid.UUID) (bool, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	throttle   LoginThrottle
	jwtSecret  string
	tokenTTL   time.Duration
	logger     logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	throttle LoginThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		throttle:   throttle,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		logger:     logger,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// timingHash is compared against when the account does not exist so that
// both failure paths pay for one bcrypt comparison.
func timingHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	email := NormalizeEmail(req.Email)
	throttleKey := email + "|" + ipAddress

	if !s.throttle.Allowed(throttleKey) {
		s.logger.Warn("AUTH", "Login throttled", map[string]interface{}{"email": email, "ip": ipAddress})
		return nil, serverutils.TooManyRequests("Too many login attempts, try again later")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(timingHash(), []byte(req.Password))
		return nil, s.rejectLogin(throttleKey, email, ipAddress)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.rejectLogin(throttleKey, email, ipAddress)
	}
	if admin.Role != entity.AdminRoleAdmin {
		return nil, s.rejectLogin(throttleKey, email, ipAddress)
	}

	s.throttle.Reset(throttleKey)

	now := time.Now()
	admin.LastLoginAt = &now
	if err := uow.AdminRepository().Update(ctx, admin); err != nil {
		s.logger.Warn("AUTH", "Failed to record last login", map[string]interface{}{"admin_id": admin.Id.String(), "error": err.Error()})
	}

	token, expiresAt, err := serverutils.SignAdminToken(s.jwtSecret, serverutils.AdminPrincipal{
		Id:    admin.Id,
		Email: admin.Email,
		Role:  string(admin.Role),
	}, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AUTH", "Admin logged in", map[string]interface{}{"admin_id": admin.Id.String(), "ip": ipAddress})

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Admin:       *toAdminResponse(admin),
	}, nil
}

func (s *authService) rejectLogin(throttleKey, email, ipAddress string) error {
	s.throttle.Fail(throttleKey)
	s.logger.Warn("AUTH", "Failed admin login", map[string]interface{}{"email": email, "ip": ipAddress})
	return serverutils.Unauthorized("Invalid credentials")
}

func (s *authService) Me(ctx context.Context, adminId uuid.UUID) (*dto.AdminResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindByID(ctx, adminId)
	if err != nil {
		return nil, err
	}
	if admin == nil || !admin.IsActive {
		return nil, serverutils.Unauthorized("Admin account not found")
	}
	return toAdminResponse(admin), nil
}

// IsActiveAdmin backs the admin route guard.
func (s *authService) IsActiveAdmin(ctx context.Context, adminId uuid.UUID) (bool, error) {
	admin, err := s.uowFactory.NewUnitOfWork(ctx).AdminRepository().FindByID(ctx, adminId)
	if err != nil {
		return false, err
	}
	return admin != nil && admin.IsActive && admin.Role == entity.AdminRoleAdmin, nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		Id:          a.Id,
		Email:       a.Email,
		Role:        string(a.Role),
		LastLoginAt: a.LastLoginAt,
	}
}
