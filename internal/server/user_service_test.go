package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefevre/cv-builder/internal/config"
	"github.com/mlefevre/cv-builder/internal/db"
	"github.com/mlefevre/cv-builder/internal/types"
)

// fakeDB is an in-memory DBClient for user service tests.
type fakeDB struct {
	users map[uuid.UUID]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeDB) DeleteUser(_ context.Context, userID uuid.UUID) error {
	delete(f.users, userID)
	return nil
}

func testUserService() (*UserService, *fakeDB) {
	fake := newFakeDB()
	pw := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(fake, pw), fake
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Marie",
		Email:    "marie@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marie", user.Name)
	assert.True(t, user.PasswordSet)

	logged, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "marie@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Marie", Email: "marie@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	var exists *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &exists)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Marie", Email: "marie@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "marie@example.com", Password: "wrong"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _ := testUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{Email: "nobody@example.com", Password: "x"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_UpdatePassword(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Marie", Email: "marie@example.com", Password: "old password",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(ctx, user.ID, "old password", "new password"))

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "marie@example.com", Password: "new password"})
	assert.NoError(t, err)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	svc, _ := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Marie", Email: "marie@example.com", Password: "old password",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(ctx, user.ID, "not the password", "new password")
	var mismatch *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatch)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	svc, _ := testUserService()

	err := svc.UpdatePassword(context.Background(), uuid.New(), "a", "b")
	var notFound *ErrUserNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestUserService_DeleteAccount(t *testing.T) {
	svc, fake := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Marie", Email: "marie@example.com", Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, user.ID, "password123"))
	assert.Empty(t, fake.users)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "marie@example.com", Password: "password123"})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_DeleteAccount_WrongPassword(t *testing.T) {
	svc, fake := testUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Marie", Email: "marie@example.com", Password: "password123",
	})
	require.NoError(t, err)

	err = svc.DeleteAccount(ctx, user.ID, "wrong")
	var mismatch *ErrPasswordMismatch
	assert.ErrorAs(t, err, &mismatch)
	assert.Len(t, fake.users, 1)
}
