package session

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// ContainerLoader builds the live container of a vault that nobody is
// viewing yet.
type ContainerLoader interface {
	LoadContainer(ctx context.Context, vault models.VaultIdentity, size int) (*models.Container, error)
}

// CommitFunc persists the contents of a container whose last viewer left.
type CommitFunc func(c *models.Container) error
