package services

import (
	"context"
	"errors"
	"time"

	"github.com/Reactman/wakanda/core"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/utils"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserService lists all use-cases that handlers can call.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) // cache-aware; used by /me

	CreateUser(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context, page, limit int) (*models.Page[models.User], error)
}

type userService struct {
	repo repositories.UserRepository
	base BaseService[models.User, uuid.UUID]
	log  *redislog.Logger
}

// NewUserService builds the user use-cases on top of the generic base service.
// rdb and rlog may be nil.
func NewUserService(repo repositories.UserRepository, rdb *redis.Client, rlog *redislog.Logger) UserService {
	return &userService{
		repo: repo,
		base: NewBaseService[models.User, *models.User, uuid.UUID](repo, rdb, rlog, "user"),
		log:  rlog,
	}
}

// Register creates a new user (after checking email uniqueness), hashes the
// password and warms the cache.
func (s *userService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		s.log.Warn(ctx, "register email exists", map[string]string{"email": req.Email})
		return nil, ErrEmailExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     core.NormalizeName(req.Name),
		Email:    req.Email,
		Password: hash,
	}
	if _, err := s.base.Save(ctx, u); err != nil {
		return nil, emailTaken(err)
	}

	s.log.Info(ctx, "register success", map[string]string{"user_id": u.ID.String(), "email": u.Email})
	return u, nil
}

// Login validates credentials and issues an HS256 JWT whose subject is the user id.
func (s *userService) Login(ctx context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Warn(ctx, "login user not found", map[string]string{"email": req.Email})
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPassword(u.Password, req.Password) {
		s.log.Warn(ctx, "login wrong password", map[string]string{"email": req.Email})
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": u.ID.String(),
		"exp": now.Add(exp).Unix(),
		"iat": now.Unix(),
		"eml": u.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		s.log.Error(ctx, "login token sign error", map[string]string{"email": u.Email, "err": err.Error()})
		return "", err
	}

	s.log.Info(ctx, "login success", map[string]string{"user_id": u.ID.String()})
	return signed, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.base.FindOne(ctx, id)
}

// CreateUser is the admin-style create; same semantics as Register.
func (s *userService) CreateUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.Register(ctx, req)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.GetByID(ctx, id)
}

// UpdateUser applies partial updates and re-hashes the password if one is given.
// The write is version-checked; a concurrent change yields repositories.ErrOptimisticLock.
func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = core.NormalizeName(*req.Name)
	}
	if req.Email != nil && *req.Email != u.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			s.log.Warn(ctx, "UpdateUser email exists", map[string]string{"email": *req.Email})
			return nil, ErrEmailExists
		}
		u.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
	}

	saved, err := s.base.Save(ctx, u)
	if err != nil {
		return nil, emailTaken(err)
	}
	return saved, nil
}

// emailTaken maps a unique-key violation on save to ErrEmailExists. The
// lookup before the write only sees live rows; a soft-deleted user still
// holds its email in the index.
func emailTaken(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmailExists
	}
	return err
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.base.Delete(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, page, limit int) (*models.Page[models.User], error) {
	return s.base.FindPage(ctx, page, limit)
}
