package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/mock"
	"github.com/MKhiriev/clip-keeper/internal/store"
	"github.com/MKhiriev/clip-keeper/models"
)

func newBlobBackedStorage(t *testing.T) (store.SnapshotStorage, *mock.MockSnapshotRepository, *mock.MockSnapshotBlobStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSnapshotRepository(ctrl)
	blobs := mock.NewMockSnapshotBlobStore(ctrl)
	return store.NewSnapshotStorage(repo, blobs, logger.Nop()), repo, blobs
}

func TestSnapshotStorage_SaveMovesPayloadToBlob(t *testing.T) {
	ctx := context.Background()
	storage, repo, blobs := newBlobBackedStorage(t)

	snap := models.StoredSnapshot{
		AccountID:       "acc-1",
		DeviceID:        "device_a",
		Payload:         models.EncryptedPayload{Encrypted: []byte{1, 2, 3}, IV: make([]byte, 12)},
		ClientTimestamp: 1700000000000,
		Version:         models.PayloadVersion,
	}

	gomock.InOrder(
		blobs.EXPECT().PutPayload(ctx, "snapshots/acc-1/device_a.json", gomock.Any()).Return(nil),
		repo.EXPECT().UpsertSnapshot(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, row models.StoredSnapshot) error {
			assert.Equal(t, "snapshots/acc-1/device_a.json", row.BlobKey)
			assert.Empty(t, row.Payload.Encrypted, "the row keeps only the key")
			assert.Equal(t, int64(1700000000000), row.ClientTimestamp)
			return nil
		}),
	)

	require.NoError(t, storage.Save(ctx, snap))
}

func TestSnapshotStorage_LoadLatestBlobError(t *testing.T) {
	ctx := context.Background()
	storage, repo, blobs := newBlobBackedStorage(t)

	repo.EXPECT().GetLatestSnapshot(ctx, "acc-1", "device_a").
		Return(models.StoredSnapshot{AccountID: "acc-1", DeviceID: "device_b", BlobKey: "snapshots/acc-1/device_b.json"}, nil)
	blobs.EXPECT().GetPayload(ctx, "snapshots/acc-1/device_b.json").Return(nil, assert.AnError)

	_, err := storage.LoadLatest(ctx, "acc-1", "device_a")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSnapshotStorage_DeleteIgnoresOrphanedBlobs(t *testing.T) {
	ctx := context.Background()
	storage, repo, blobs := newBlobBackedStorage(t)

	repo.EXPECT().DeleteSnapshots(ctx, "acc-1").Return([]string{"k1", "k2"}, nil)
	blobs.EXPECT().DeletePayload(ctx, "k1").Return(assert.AnError)
	blobs.EXPECT().DeletePayload(ctx, "k2").Return(nil)

	require.NoError(t, storage.Delete(ctx, "acc-1"))
}

func TestSnapshotStorage_DeleteRepositoryErrorSkipsBlobs(t *testing.T) {
	ctx := context.Background()
	storage, repo, _ := newBlobBackedStorage(t)

	repo.EXPECT().DeleteSnapshots(ctx, "acc-1").Return(nil, assert.AnError)

	assert.ErrorIs(t, storage.Delete(ctx, "acc-1"), assert.AnError)
}
