package client

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "vaultd"
)

func newTestApp(t *testing.T, signKey string) (*App, *mock.MockAdminAdapter, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockAdminAdapter(ctrl)

	cfg := &config.ClientConfig{App: config.ClientApp{
		TokenSignKey:  signKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}}
	out := &bytes.Buffer{}
	return NewApp(m, cfg, models.NewAppBuildInfo("1.0.0", "", ""), out, logger.Nop()), m, out
}

func run(a *App, args ...string) error {
	return a.Run(context.Background(), append([]string{"vaultctl"}, args...))
}

func TestToken(t *testing.T) {
	a, m, out := newTestApp(t, testSignKey)
	m.EXPECT().SetToken(gomock.Any())

	require.NoError(t, run(a, "token", "--subject", "ops", "--scope", models.PermissionDelete))

	token, err := utils.ValidateAndParseJWTToken(strings.TrimSpace(out.String()), testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "ops", token.Subject)
	assert.Equal(t, []string{models.PermissionDelete}, token.Scopes)
}

func TestToken_NoSignKey(t *testing.T) {
	a, _, _ := newTestApp(t, "")

	err := run(a, "token")
	assert.ErrorContains(t, err, errNoSignKey.Error())
}

func TestExplicitTokenWins(t *testing.T) {
	a, m, _ := newTestApp(t, testSignKey)
	m.EXPECT().SetToken("given")
	m.EXPECT().ListVaults(gomock.Any(), "alice").Return([]int{1}, nil)

	require.NoError(t, run(a, "--token", "given", "list", "alice"))
}

func TestMintedTokenIsAdmin(t *testing.T) {
	a, m, _ := newTestApp(t, testSignKey)
	m.EXPECT().SetToken(gomock.Any()).Do(func(token string) {
		parsed, err := utils.ValidateAndParseJWTToken(token, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.True(t, parsed.Allows(models.PermissionDeleteAll))
	})
	m.EXPECT().Failures(gomock.Any()).Return(nil, nil)

	require.NoError(t, run(a, "failures"))
}

func TestList(t *testing.T) {
	a, m, out := newTestApp(t, "")
	m.EXPECT().ListVaults(gomock.Any(), "alice").Return(nil, nil)

	require.NoError(t, run(a, "list", "alice"))

	var got models.VaultListResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, models.OwnerID("alice"), got.Owner)
	assert.Equal(t, []int{}, got.Numbers)
}

func TestShow(t *testing.T) {
	a, m, out := newTestApp(t, "")
	m.EXPECT().ShowVault(gomock.Any(), "alice", 2).Return(models.VaultResponse{Owner: "alice", Number: 2, Exists: true, Size: 9}, nil)

	require.NoError(t, run(a, "show", "alice", "2"))
	assert.Contains(t, out.String(), `"exists": true`)
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "list without owner", args: []string{"list"}, want: errMissingOwner.Error()},
		{name: "show without number", args: []string{"show", "alice"}, want: errInvalidNumber.Error()},
		{name: "delete zero", args: []string{"delete", "alice", "0"}, want: errInvalidNumber.Error()},
		{name: "delete-all unconfirmed", args: []string{"delete-all", "alice"}, want: "without --yes"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t, "")
			assert.ErrorContains(t, run(a, tt.args...), tt.want)
		})
	}
}

func TestDelete(t *testing.T) {
	a, m, _ := newTestApp(t, "")
	m.EXPECT().DeleteVault(gomock.Any(), "alice", 3).Return(nil)
	m.EXPECT().DeleteAllVaults(gomock.Any(), "bob").Return(nil)

	require.NoError(t, run(a, "delete", "alice", "3"))
	require.NoError(t, run(a, "delete-all", "--yes", "bob"))
}

func TestServerErrorIsReturned(t *testing.T) {
	a, m, _ := newTestApp(t, "")
	m.EXPECT().DeleteVault(gomock.Any(), "alice", 3).Return(adapter.ErrForbidden)

	assert.ErrorContains(t, run(a, "delete", "alice", "3"), adapter.ErrForbidden.Error())
}

func TestServerVersion(t *testing.T) {
	a, m, out := newTestApp(t, "")
	m.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	require.NoError(t, run(a, "server-version"))
	assert.JSONEq(t, `{"client":"1.0.0","server":"2.0.0"}`, out.String())
}
