package store

const (
	snapshotsTable = "snapshots"
	devicesTable   = "devices"

	upsertSnapshotSuffix = `ON CONFLICT (account_id, device_id) DO UPDATE SET
		encrypted = EXCLUDED.encrypted,
		iv = EXCLUDED.iv,
		blob_key = EXCLUDED.blob_key,
		client_timestamp = EXCLUDED.client_timestamp,
		version = EXCLUDED.version,
		updated_at = EXCLUDED.updated_at`

	returningBlobKeySuffix = "RETURNING blob_key"

	touchDeviceSuffix = `ON CONFLICT (account_id, device_id) DO UPDATE SET
		last_seen = EXCLUDED.last_seen`
)

var snapshotColumns = []string{
	"account_id",
	"device_id",
	"encrypted",
	"iv",
	"blob_key",
	"client_timestamp",
	"version",
	"updated_at",
}
