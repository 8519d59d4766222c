package codec

import (
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/models"
)

const owner = models.OwnerID("6f1c1b42-3c1e-4a7e-9a55-0c1b0d7f2a11")

func stack(t string, amount int) *models.SlotStack {
	return &models.SlotStack{Type: t, Amount: amount, MaxStackSize: 64}
}

func TestBlobCodec_RoundTrip(t *testing.T) {
	modelData := 7

	full := make([]*models.SlotStack, 27)
	for i := range full {
		full[i] = stack("STONE", 64)
	}

	tests := []struct {
		name  string
		slots []*models.SlotStack
	}{
		{name: "all empty", slots: make([]*models.SlotStack, 54)},
		{name: "all full", slots: full},
		{name: "zero size", slots: nil},
		{
			name: "sparse with metadata",
			slots: []*models.SlotStack{
				nil,
				{
					Type:         "DIAMOND_SWORD",
					Amount:       1,
					MaxStackSize: 1,
					ModelData:    &modelData,
					Enchantments: map[string]int{"sharpness": 5},
					Meta:         map[string]string{"display_name": "Edge"},
				},
				nil,
				stack("DIRT", 12),
				nil, nil, nil, nil, nil,
			},
		},
	}

	c := NewBlobCodec()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			in := models.NewContainerSnapshot(tt.slots)

			blob, err := c.Encode(in, owner)
			require.NoError(t, err)
			require.NotEmpty(t, blob)

			out, err := c.Decode(blob, owner)
			require.NoError(t, err)
			require.NotNil(t, out)
			if diff := cmp.Diff(in.Slots(), out.Slots()); diff != "" {
				t.Errorf("decoded slots differ (-want +got):\n%s", diff)
			}
			assert.True(t, in.Equal(*out))
			assert.Equal(t, in.Len(), out.Len())
		})
	}
}

func TestBlobCodec_DecodeEmpty(t *testing.T) {
	out, err := NewBlobCodec().Decode("  ", owner)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestBlobCodec_DecodeCorrupt(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name    string
		blob    string
		wantErr error
	}{
		{name: "not base64", blob: "%%%", wantErr: ErrCorruptBlob},
		{name: "not json", blob: b64("{oops"), wantErr: ErrCorruptBlob},
		{name: "missing version", blob: b64(`{"size":9}`), wantErr: ErrCorruptBlob},
		{name: "index out of range", blob: b64(`{"v":1,"size":1,"slots":[{"i":3,"stack":{"type":"A","amount":1}}]}`), wantErr: ErrCorruptBlob},
		{name: "duplicate index", blob: b64(`{"v":1,"size":2,"slots":[{"i":0,"stack":{"type":"A","amount":1}},{"i":0,"stack":{"type":"B","amount":1}}]}`), wantErr: ErrCorruptBlob},
		{name: "future version", blob: b64(`{"v":9,"size":9}`), wantErr: ErrUnsupportedVersion},
		{name: "huge size", blob: b64(`{"v":1,"size":1099511627776,"slots":[]}`), wantErr: ErrCorruptBlob},
		{name: "size above six rows", blob: b64(`{"v":1,"size":63,"slots":[]}`), wantErr: ErrCorruptBlob},
		{name: "more slots than size", blob: b64(`{"v":1,"size":1,"slots":[{"i":0,"stack":{"type":"A","amount":1}},{"i":0,"stack":{"type":"B","amount":1}}]}`), wantErr: ErrCorruptBlob},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewBlobCodec().Decode(tt.blob, owner)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestBlobCodec_EncodeRejectsEmptyStack(t *testing.T) {
	_, err := NewBlobCodec().Encode(models.NewContainerSnapshot([]*models.SlotStack{stack("STONE", 0)}), owner)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestBlobCodec_EncodeRejectsOversizedSnapshot(t *testing.T) {
	_, err := NewBlobCodec().Encode(models.NewContainerSnapshot(make([]*models.SlotStack, models.MaxContainerSize+9)), owner)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
