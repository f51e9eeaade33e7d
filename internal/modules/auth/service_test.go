package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"publicapi/internal/domain"
	jwtsvc "publicapi/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user reader implementing the interface
type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByAPIID(ctx context.Context, apiID string) (*domain.ApiUser, error) {
	args := m.Called(ctx, apiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiUser), args.Error(1)
}

// Mock blacklist store
type mockBlacklist struct {
	mock.Mock
}

func (m *mockBlacklist) Revoke(ctx context.Context, jti string, expires time.Time) error {
	args := m.Called(ctx, jti, expires)
	return args.Error(0)
}

func (m *mockBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

func testUser(t *testing.T, apiID, key string) *domain.ApiUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.ApiUser{
		ID:    1,
		APIID: apiID,
		Key:   string(hash),
		Name:  "test testerson",
		Email: "test@test.com",
	}
}

func newTestService(users UserReader, blacklist BlacklistStore) (*Service, *jwtsvc.Service) {
	codec := jwtsvc.New("test-secret", 15*time.Minute, 24*time.Hour)
	return NewService(users, blacklist, codec), codec
}

func TestService_Login_IssuesRefreshToken(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	users.On("GetByAPIID", mock.Anything, "u1").Return(testUser(t, "u1", "secret"), nil)

	service, codec := newTestService(users, blacklist)

	token, err := service.Login(context.Background(), "u1", "secret")
	require.NoError(t, err)

	claims, err := codec.Validate(token)
	require.NoError(t, err)
	assert.True(t, claims.IsRefresh(), "refresh tokens always carry a jti")
	assert.Equal(t, jwtsvc.ScopePublic, claims.Scopes.Access)
	assert.Equal(t, "u1", claims.Subject)

	users.AssertExpectations(t)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	users.On("GetByAPIID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service, _ := newTestService(users, blacklist)

	_, err := service.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_WrongKey(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	users.On("GetByAPIID", mock.Anything, "u1").Return(testUser(t, "u1", "secret"), nil)

	service, _ := newTestService(users, blacklist)

	_, err := service.Login(context.Background(), "u1", "not-the-secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_DisabledAccount(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	u := testUser(t, "u1", "secret")
	u.Disabled = true
	users.On("GetByAPIID", mock.Anything, "u1").Return(u, nil)

	service, _ := newTestService(users, blacklist)

	_, err := service.Login(context.Background(), "u1", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "disabled accounts look like bad credentials")
}

func TestService_Refresh_IssuesAccessToken(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	blacklist.On("IsRevoked", mock.Anything, mock.Anything).Return(false, nil)

	service, codec := newTestService(users, blacklist)

	refresh, err := codec.IssueRefresh("u1")
	require.NoError(t, err)

	access, err := service.Refresh(context.Background(), refresh)
	require.NoError(t, err)

	claims, err := codec.Validate(access)
	require.NoError(t, err)
	assert.False(t, claims.IsRefresh(), "access tokens never carry a jti")
	assert.Equal(t, jwtsvc.ScopePublic, claims.Scopes.Access)
	assert.Equal(t, "u1", claims.Subject)

	blacklist.AssertExpectations(t)
}

func TestService_Refresh_RevokedJTI(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	blacklist.On("IsRevoked", mock.Anything, mock.Anything).Return(true, nil)

	service, codec := newTestService(users, blacklist)

	refresh, err := codec.IssueRefresh("u1")
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestService_Refresh_RejectsAccessToken(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)

	service, codec := newTestService(users, blacklist)

	// An access token has no jti and must not pass the refresh exchange.
	access, err := codec.IssueAccess("u1")
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	blacklist.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestService_Refresh_GarbageToken(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)

	service, _ := newTestService(users, blacklist)

	_, err := service.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestService_Refresh_StoreErrorDenies(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)
	storeErr := errors.New("connection refused")
	blacklist.On("IsRevoked", mock.Anything, mock.Anything).Return(false, storeErr)

	service, codec := newTestService(users, blacklist)

	refresh, err := codec.IssueRefresh("u1")
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), refresh)
	assert.ErrorIs(t, err, storeErr, "a broken store must never fail open")
}

func TestService_Revoke_BlacklistsUntilExpiry(t *testing.T) {
	users := new(mockUserReader)
	blacklist := new(mockBlacklist)

	service, codec := newTestService(users, blacklist)

	refresh, err := codec.IssueRefresh("u1")
	require.NoError(t, err)
	claims, err := codec.Validate(refresh)
	require.NoError(t, err)

	blacklist.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(expires time.Time) bool {
		return expires.Equal(claims.ExpiresAt.Time)
	})).Return(nil)

	require.NoError(t, service.Revoke(context.Background(), refresh))
	blacklist.AssertExpectations(t)
}
