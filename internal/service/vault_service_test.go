package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-keeper/internal/codec"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/session"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func newVaultService(t *testing.T) (service.VaultService, *mock.MockVaultStore, *session.Registry) {
	ctrl := gomock.NewController(t)
	st := mock.NewMockVaultStore(ctrl)
	c := codec.NewBlobCodec()
	log := logger.Nop()
	registry := session.NewRegistry(service.NewVaultLoader(st, c, 54, log), log)
	return service.NewVaultService(st, c, registry, log), st, registry
}

func encode(t *testing.T, slots ...*models.SlotStack) string {
	t.Helper()
	blob, err := codec.NewBlobCodec().Encode(models.NewContainerSnapshot(slots), vault.Owner)
	require.NoError(t, err)
	return blob
}

func TestVaultService_ListVaults(t *testing.T) {
	svc, st, _ := newVaultService(t)
	ctx := context.Background()

	st.EXPECT().ListVaultNumbers(ctx, vault.Owner).Return([]int{1, 4}, nil)
	numbers, err := svc.ListVaults(ctx, vault.Owner)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, numbers)

	boom := errors.New("corrupt")
	st.EXPECT().ListVaultNumbers(ctx, vault.Owner).Return(nil, boom)
	_, err = svc.ListVaults(ctx, vault.Owner)
	assert.ErrorIs(t, err, boom)
}

func TestVaultService_PeekVault(t *testing.T) {
	svc, st, registry := newVaultService(t)
	ctx := context.Background()

	st.EXPECT().ReadSlot(ctx, vault).Return(encode(t, nil, stack("GOLD_INGOT", 9)), true, nil)
	snap, err := svc.PeekVault(ctx, vault)
	require.NoError(t, err)
	got, ok := snap.Slot(1)
	require.True(t, ok)
	assert.Equal(t, "GOLD_INGOT", got.Type)

	_, stats := registry.Stats()
	assert.Zero(t, stats, "peeking opens no view")

	missing := models.VaultIdentity{Owner: vault.Owner, Number: 9}
	st.EXPECT().ReadSlot(ctx, missing).Return("", false, nil)
	_, err = svc.PeekVault(ctx, missing)
	assert.ErrorIs(t, err, service.ErrVaultNotFound)

	corrupt := models.VaultIdentity{Owner: vault.Owner, Number: 3}
	st.EXPECT().ReadSlot(ctx, corrupt).Return("%%%", true, nil)
	_, err = svc.PeekVault(ctx, corrupt)
	assert.ErrorIs(t, err, codec.ErrCorruptBlob)
}

func TestVaultService_PeekVaultPrefersLiveContainer(t *testing.T) {
	svc, st, registry := newVaultService(t)
	ctx := context.Background()

	st.EXPECT().ReadSlot(gomock.Any(), vault).Return("", false, nil)
	c, err := registry.OpenView(ctx, "A", vault, 9)
	require.NoError(t, err)
	require.NoError(t, c.SetSlot(0, stack("LIVE", 1)))

	snap, err := svc.PeekVault(ctx, vault)
	require.NoError(t, err)
	got, ok := snap.Slot(0)
	require.True(t, ok)
	assert.Equal(t, "LIVE", got.Type)
}

// Deleting a vault that is open drops its live container: the viewer's later
// close resolves to nothing and the deletion is not overwritten.
func TestVaultService_DeleteVaultDropsLiveView(t *testing.T) {
	svc, st, registry := newVaultService(t)
	ctx := context.Background()

	st.EXPECT().ReadSlot(gomock.Any(), vault).Return("", false, nil)
	_, err := registry.OpenView(ctx, "A", vault, 9)
	require.NoError(t, err)

	st.EXPECT().DeleteVault(ctx, vault).Return(nil)
	require.NoError(t, svc.DeleteVault(ctx, vault))

	_, ok := registry.Live(vault)
	assert.False(t, ok)
	res, _, err := registry.Release("A", func(*models.Container) error {
		t.Fatal("deleted vault must not be committed")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, session.ReleaseNoView, res)
}

func TestVaultService_DeleteAllVaults(t *testing.T) {
	svc, st, registry := newVaultService(t)
	ctx := context.Background()

	other := models.VaultIdentity{Owner: vault.Owner, Number: 2}
	st.EXPECT().ReadSlot(gomock.Any(), gomock.Any()).Return("", false, nil).Times(2)
	_, err := registry.OpenView(ctx, "A", vault, 9)
	require.NoError(t, err)
	_, err = registry.OpenView(ctx, "B", other, 9)
	require.NoError(t, err)

	st.EXPECT().DeleteAllVaults(ctx, vault.Owner).Return(nil)
	require.NoError(t, svc.DeleteAllVaults(ctx, vault.Owner))

	_, containers := registry.Stats()
	assert.Zero(t, containers)

	boom := errors.New("permission denied")
	st.EXPECT().DeleteAllVaults(ctx, vault.Owner).Return(boom)
	assert.ErrorIs(t, svc.DeleteAllVaults(ctx, vault.Owner), boom)
}

func TestVaultService_Failures(t *testing.T) {
	svc, st, _ := newVaultService(t)

	want := []models.SaveFailure{{ID: "01J", Owner: vault.Owner, Stage: "rename"}}
	st.EXPECT().Failures().Return(want)

	assert.Equal(t, want, svc.Failures(context.Background()))
}
