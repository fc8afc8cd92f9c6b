package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"dashmart.backend/internal/config"
	"dashmart.backend/internal/domain/entities"
)

type stubRuntime struct {
	user     *entities.User
	userErr  error
	resp     *entities.CreateApiKeyResponse
	issueErr error

	gotOwnerID uuid.UUID
	gotInput   *entities.CreateApiKeyInput
}

func (s *stubRuntime) GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	if s.userErr != nil {
		return nil, s.userErr
	}
	return s.user, nil
}

func (s *stubRuntime) IssueApiKey(ctx context.Context, ownerID uuid.UUID, input *entities.CreateApiKeyInput) (*entities.CreateApiKeyResponse, error) {
	s.gotOwnerID = ownerID
	s.gotInput = input
	if s.issueErr != nil {
		return nil, s.issueErr
	}
	return s.resp, nil
}

func stubDeps(rt adminAPIKeyRuntime, out io.Writer) adminAPIKeyDeps {
	return adminAPIKeyDeps{
		loadEnv: func() error { return nil },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (adminAPIKeyRuntime, io.Closer, error) {
			return rt, nil, nil
		},
		now: func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
		out: out,
	}
}

func TestRunAdminAPIKey_Success(t *testing.T) {
	ownerID := uuid.New()
	rt := &stubRuntime{
		user: &entities.User{ID: ownerID, Role: entities.RoleAdmin},
		resp: &entities.CreateApiKeyResponse{
			ID:             uuid.New(),
			Description:    "ops key",
			ConsumerKey:    "ck_0123456789abcdef0123456789abcdef",
			ConsumerSecret: "cs_fedcba9876543210fedcba9876543210",
		},
	}

	var out bytes.Buffer
	err := runAdminAPIKey([]string{"--owner-id", ownerID.String(), "--description", "ops key"}, stubDeps(rt, &out))
	require.NoError(t, err)

	require.Equal(t, ownerID, rt.gotOwnerID)
	require.Equal(t, "ops key", rt.gotInput.Description)
	require.Equal(t, []string{"read", "write", "delete"}, rt.gotInput.Permissions)

	require.Contains(t, out.String(), "CONSUMER_KEY=ck_0123456789abcdef0123456789abcdef")
	require.Contains(t, out.String(), "CONSUMER_SECRET=cs_fedcba9876543210fedcba9876543210")
}

func TestRunAdminAPIKey_CustomPermissions(t *testing.T) {
	ownerID := uuid.New()
	rt := &stubRuntime{
		user: &entities.User{ID: ownerID, Role: entities.RoleAdmin},
		resp: &entities.CreateApiKeyResponse{ID: uuid.New()},
	}

	var out bytes.Buffer
	err := runAdminAPIKey([]string{"--owner-id", ownerID.String(), "--permissions", "read, write"}, stubDeps(rt, &out))
	require.NoError(t, err)
	require.Equal(t, []string{"read", "write"}, rt.gotInput.Permissions)
}

func TestRunAdminAPIKey_MissingOwnerID(t *testing.T) {
	var out bytes.Buffer
	err := runAdminAPIKey(nil, stubDeps(&stubRuntime{}, &out))
	require.Error(t, err)

	err = runAdminAPIKey([]string{"--owner-id", "not-a-uuid"}, stubDeps(&stubRuntime{}, &out))
	require.Error(t, err)
}

func TestRunAdminAPIKey_NonAdminRejected(t *testing.T) {
	ownerID := uuid.New()
	rt := &stubRuntime{
		user: &entities.User{ID: ownerID, Role: entities.RoleOperator},
	}

	var out bytes.Buffer
	err := runAdminAPIKey([]string{"--owner-id", ownerID.String()}, stubDeps(rt, &out))
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not ADMIN")
	require.Nil(t, rt.gotInput, "no key may be issued for a non-admin owner")
}

func TestRunAdminAPIKey_UserLookupFailure(t *testing.T) {
	ownerID := uuid.New()
	rt := &stubRuntime{userErr: errors.New("db down")}

	var out bytes.Buffer
	err := runAdminAPIKey([]string{"--owner-id", ownerID.String()}, stubDeps(rt, &out))
	require.Error(t, err)
}

func TestResolveDescription(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "custom", resolveDescription("custom", now))
	require.Equal(t, "admin-issued-20260301-120000", resolveDescription("", now))
}

func TestParsePermissionFlags(t *testing.T) {
	require.Equal(t, []string{"read", "write", "delete"}, parsePermissionFlags(""))
	require.Equal(t, []string{"read"}, parsePermissionFlags("read"))
	require.Equal(t, []string{"read", "delete"}, parsePermissionFlags(" read , delete "))
}
