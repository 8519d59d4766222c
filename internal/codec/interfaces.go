package codec

import "github.com/MKhiriev/go-vault-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// BlobCodec converts between container snapshots and stored blobs.
type BlobCodec interface {
	// Encode serialises s for owner.
	Encode(s models.ContainerSnapshot, owner models.OwnerID) (string, error)
	// Decode returns nil and no error when blob holds no data.
	Decode(blob string, owner models.OwnerID) (*models.ContainerSnapshot, error)
}
