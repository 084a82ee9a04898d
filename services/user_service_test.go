package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Reactman/wakanda/mocks"
	"github.com/Reactman/wakanda/models"
	"github.com/Reactman/wakanda/repositories"
	"github.com/Reactman/wakanda/utils"
	"github.com/Reactman/wakanda/utils/redislog"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var ctx = context.Background()

func newSvc(repo repositories.UserRepository, rdb *redis.Client, l *redislog.Logger) UserService {
	return NewUserService(repo, rdb, l)
}

// small helper to build deterministic JSON for a value (matches service marshal)
func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func user(id uuid.UUID, name, email string) models.User {
	u := models.User{Name: name, Email: email}
	u.ID = id
	return u
}

func TestUserService_Register_EmailExists(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	repo.On("FindByEmail", "a@b.c").Return(&models.User{Email: "a@b.c"}, nil)

	// use a NO-OP logger (nil redis client) so we don't need to mock LPUSH/LTRIM/EXPIRE
	noLog := redislog.New(nil, "", 0, 0)
	svc := newSvc(repo, nil, noLog)

	u, err := svc.Register(ctx, models.RegisterRequest{Name: "  aHMED  ", Email: "a@b.c", Password: "123456"})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUserService_Register_Success_NormalizesAndCaches(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	rdb, rmock := mocks.NewRedisMock(t)
	id := uuid.MustParse("0b7e2f4c-5a43-4d8e-9a1f-2c3d4e5f6a7b")

	repo.On("FindByEmail", "a@b.c").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Save", mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = id
	})

	rmock.ExpectDel("user:" + id.String()).SetVal(0)
	rmock.ExpectSet("user:"+id.String(), mustJSON(user(id, "AHMED", "a@b.c")), 10*time.Minute).SetVal("OK")

	svc := newSvc(repo, rdb, nil)
	u, err := svc.Register(ctx, models.RegisterRequest{Name: "  aHMED  ", Email: "a@b.c", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "AHMED", u.Name)
	assert.True(t, utils.CheckPassword(u.Password, "123456"))

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestUserService_Register_EmailHeldBySoftDeletedUser(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	repo.On("FindByEmail", "a@b.c").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Save", mock.AnythingOfType("*models.User")).Return(gorm.ErrDuplicatedKey)

	svc := newSvc(repo, nil, nil)
	u, err := svc.Register(ctx, models.RegisterRequest{Name: "Ahmed", Email: "a@b.c", Password: "123456"})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserService_Login_Invalid(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	repo.On("FindByEmail", "x@y.z").Return(nil, gorm.ErrRecordNotFound)

	svc := newSvc(repo, nil, nil)
	tok, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.z", Password: "pw"}, "sec", time.Hour)
	assert.Empty(t, tok)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	hash, _ := utils.HashPassword("good")
	repo.On("FindByEmail", "x@y.z").Return(&models.User{Email: "x@y.z", Password: hash}, nil)

	svc := newSvc(repo, nil, nil)
	_, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.z", Password: "bad"}, "sec", time.Hour)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Login_Success_JWT(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	hash, _ := utils.HashPassword("good")
	u := user(uuid.New(), "Ahmed", "x@y.z")
	u.Password = hash
	repo.On("FindByEmail", "x@y.z").Return(&u, nil)

	svc := newSvc(repo, nil, nil)
	tok, err := svc.Login(ctx, models.LoginRequest{Email: "x@y.z", Password: "good"}, "sec", time.Minute)
	require.NoError(t, err)

	parsed, err := jwt.Parse(tok, func(*jwt.Token) (any, error) { return []byte("sec"), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), sub)
}

func TestUserService_GetByID_CacheHit(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	rdb, rmock := mocks.NewRedisMock(t)
	svc := newSvc(repo, rdb, nil)

	u := user(uuid.New(), "Ahmed", "a@b.c")
	rmock.ExpectGet("user:" + u.ID.String()).SetVal(string(mustJSON(u)))

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	repo.AssertNotCalled(t, "FindByID", mock.Anything)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestUserService_GetByID_MissThenDBThenSet(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	rdb, rmock := mocks.NewRedisMock(t)
	svc := newSvc(repo, rdb, nil)

	u := user(uuid.New(), "", "a@b.c")
	key := "user:" + u.ID.String()
	rmock.ExpectGet(key).RedisNil()
	repo.On("FindByID", u.ID).Return(&u, nil)
	rmock.ExpectSet(key, mustJSON(u), 10*time.Minute).SetVal("OK")

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestUserService_UpdateUser_NameNormalized_RefreshCache(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	rdb, rmock := mocks.NewRedisMock(t)
	svc := newSvc(repo, rdb, nil)

	id := uuid.New()
	old := user(id, "Old", "")
	repo.On("FindByID", id).Return(&old, nil)
	repo.On("Save", mock.AnythingOfType("*models.User")).Return(nil)

	key := "user:" + id.String()
	rmock.ExpectDel(key).SetVal(1)
	rmock.ExpectSet(key, mustJSON(user(id, "AHMED", "")), 10*time.Minute).SetVal("OK")

	newName := "  aHMED "
	got, err := svc.UpdateUser(ctx, id, models.UpdateUserRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "AHMED", got.Name)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	svc := newSvc(repo, nil, nil)

	id := uuid.New()
	cur := user(id, "Ahmed", "old@b.c")
	repo.On("FindByID", id).Return(&cur, nil)
	repo.On("FindByEmail", "new@b.c").Return(&models.User{Email: "new@b.c"}, nil)

	email := "new@b.c"
	_, err := svc.UpdateUser(ctx, id, models.UpdateUserRequest{Email: &email})
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestUserService_UpdateUser_StaleVersion(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	svc := newSvc(repo, nil, nil)

	id := uuid.New()
	cur := user(id, "Ahmed", "a@b.c")
	repo.On("FindByID", id).Return(&cur, nil)
	repo.On("Save", mock.AnythingOfType("*models.User")).Return(repositories.ErrOptimisticLock)

	name := "Other"
	_, err := svc.UpdateUser(ctx, id, models.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, repositories.ErrOptimisticLock)
}

func TestUserService_DeleteUser_DeletesAndClearsCache(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	rdb, rmock := mocks.NewRedisMock(t)
	svc := newSvc(repo, rdb, nil)

	id := uuid.New()
	repo.On("DeleteByID", id).Return(nil)
	rmock.ExpectDel("user:" + id.String()).SetVal(1)

	require.NoError(t, svc.DeleteUser(ctx, id))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestUserService_ListUsers_Clamp(t *testing.T) {
	repo := new(mocks.UserRepositoryMock)
	svc := newSvc(repo, nil, nil)

	repo.On("FindPage", 0, 10, []models.Sort(nil)).
		Return([]models.User{user(uuid.New(), "A", "a@b.c")}, int64(1), nil)

	out, err := svc.ListUsers(ctx, 0, 1000)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)
}
