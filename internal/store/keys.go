package store

// Keys under which the client keeps its state in a [KeyValueStore].
// The names are shared with other clients and must not change.
const (
	KeyClipboardHistory = "clipboardHistory"
	KeyTemplates        = "clipmasterTemplates"
	KeySettings         = "clipmasterSettings"
	KeyDeviceID         = "deviceId"
	KeyEncryptionKey    = "encryptionKey"
	KeyCloudSyncEnabled = "cloudSyncEnabled"
	KeyLastSyncTime     = "lastSyncTime"
)
