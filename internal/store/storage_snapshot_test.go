package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/models"
)

type fakeSnapshotRepository struct {
	rows      map[string]models.StoredSnapshot
	deleteErr error
}

func newFakeSnapshotRepository() *fakeSnapshotRepository {
	return &fakeSnapshotRepository{rows: map[string]models.StoredSnapshot{}}
}

func rowKey(accountID, deviceID string) string {
	return accountID + "|" + deviceID
}

func (f *fakeSnapshotRepository) UpsertSnapshot(_ context.Context, s models.StoredSnapshot) error {
	f.rows[rowKey(s.AccountID, s.DeviceID)] = s
	return nil
}

func (f *fakeSnapshotRepository) GetLatestSnapshot(_ context.Context, accountID, excludeDeviceID string) (models.StoredSnapshot, error) {
	var (
		latest models.StoredSnapshot
		found  bool
	)
	for _, s := range f.rows {
		if s.AccountID != accountID || s.DeviceID == excludeDeviceID {
			continue
		}
		if !found || s.ClientTimestamp > latest.ClientTimestamp {
			latest, found = s, true
		}
	}
	if !found {
		return models.StoredSnapshot{}, ErrSnapshotNotFound
	}
	return latest, nil
}

func (f *fakeSnapshotRepository) DeleteSnapshots(_ context.Context, accountID string) ([]string, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	var keys []string
	for k, s := range f.rows {
		if s.AccountID != accountID {
			continue
		}
		if s.BlobKey != "" {
			keys = append(keys, s.BlobKey)
		}
		delete(f.rows, k)
	}
	return keys, nil
}

// fakeS3 is an in-memory s3API.
type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func testSnapshot(deviceID string, ts int64) models.StoredSnapshot {
	return models.StoredSnapshot{
		AccountID:       "acc",
		DeviceID:        deviceID,
		Payload:         models.EncryptedPayload{Encrypted: []byte("cipher-" + deviceID), IV: bytes.Repeat([]byte{1}, 12)},
		ClientTimestamp: ts,
		Version:         models.PayloadVersion,
	}
}

func TestSnapshotStorage_InlinePayload(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSnapshotRepository()
	s := NewSnapshotStorage(repo, nil, logger.Nop())

	require.NoError(t, s.Save(ctx, testSnapshot("device_1", 10)))
	assert.Empty(t, repo.rows[rowKey("acc", "device_1")].BlobKey)

	_, err := s.LoadLatest(ctx, "acc", "device_1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound, "own upload must not be returned")

	got, err := s.LoadLatest(ctx, "acc", "device_2")
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher-device_1"), got.Payload.Encrypted)

	require.NoError(t, s.Delete(ctx, "acc"))
	_, err = s.LoadLatest(ctx, "acc", "device_2")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSnapshotStorage_LoadLatestPicksNewestOtherDevice(t *testing.T) {
	ctx := context.Background()
	s := NewSnapshotStorage(newFakeSnapshotRepository(), nil, logger.Nop())

	require.NoError(t, s.Save(ctx, testSnapshot("device_1", 10)))
	require.NoError(t, s.Save(ctx, testSnapshot("device_2", 30)))
	require.NoError(t, s.Save(ctx, testSnapshot("device_3", 20)))

	got, err := s.LoadLatest(ctx, "acc", "device_3")
	require.NoError(t, err)
	assert.Equal(t, "device_2", got.DeviceID)

	got, err = s.LoadLatest(ctx, "acc", "device_2")
	require.NoError(t, err)
	assert.Equal(t, "device_3", got.DeviceID)
}

func TestSnapshotStorage_BlobPayload(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSnapshotRepository()
	fs3 := newFakeS3()
	s := NewSnapshotStorage(repo, newS3SnapshotBlobStore(fs3, "bucket", logger.Nop()), logger.Nop())

	require.NoError(t, s.Save(ctx, testSnapshot("device_1", 10)))

	row := repo.rows[rowKey("acc", "device_1")]
	assert.Equal(t, "snapshots/acc/device_1.json", row.BlobKey)
	assert.Nil(t, row.Payload.Encrypted, "payload body must not be stored in the row")
	assert.Contains(t, fs3.objects, "bucket/snapshots/acc/device_1.json")

	got, err := s.LoadLatest(ctx, "acc", "device_2")
	require.NoError(t, err)
	assert.Equal(t, []byte("cipher-device_1"), got.Payload.Encrypted)
	assert.Len(t, got.Payload.IV, 12)

	require.NoError(t, s.Delete(ctx, "acc"))
	assert.Empty(t, fs3.objects)
	assert.Empty(t, repo.rows)
}

func TestSnapshotStorage_BlobPutErrorKeepsRowUntouched(t *testing.T) {
	ctx := context.Background()
	repo := newFakeSnapshotRepository()
	fs3 := newFakeS3()
	fs3.putErr = errors.New("access denied")
	s := NewSnapshotStorage(repo, newS3SnapshotBlobStore(fs3, "bucket", logger.Nop()), logger.Nop())

	require.Error(t, s.Save(ctx, testSnapshot("device_1", 10)))
	assert.Empty(t, repo.rows)
}

func TestSnapshotStorage_DeleteMissingIsNoop(t *testing.T) {
	s := NewSnapshotStorage(newFakeSnapshotRepository(), nil, logger.Nop())
	require.NoError(t, s.Delete(context.Background(), "ghost"))
}

func TestSnapshotStorage_DeleteError(t *testing.T) {
	repo := newFakeSnapshotRepository()
	repo.deleteErr = errors.New("db down")
	s := NewSnapshotStorage(repo, nil, logger.Nop())
	assert.Error(t, s.Delete(context.Background(), "acc"))
}

func TestSnapshotStorage_BlobKeyWithoutBlobStore(t *testing.T) {
	repo := newFakeSnapshotRepository()
	snap := testSnapshot("device_1", 10)
	snap.BlobKey = "snapshots/acc/device_1.json"
	repo.rows[rowKey("acc", "device_1")] = snap

	_, err := NewSnapshotStorage(repo, nil, logger.Nop()).LoadLatest(context.Background(), "acc", "device_2")
	assert.Error(t, err)
}

func TestS3SnapshotBlobStore_MissingObject(t *testing.T) {
	store := newS3SnapshotBlobStore(newFakeS3(), "bucket", logger.Nop())
	_, err := store.GetPayload(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
