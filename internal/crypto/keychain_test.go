package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/clip-keeper/models"
)

// fastKeyChain keeps Argon2id cheap so wrap tests stay quick.
func fastKeyChain() KeyChainService {
	return &keyChainService{argonTime: 1, argonMemory: 8 * 1024, argonThreads: 1}
}

func TestGenerateKey_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	k1, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	k2, err := svc.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if len(k1) != 32 || len(k2) != 32 {
		t.Fatalf("key lengths = %d, %d, want 32", len(k1), len(k2))
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key, _ := svc.GenerateKey()

	snapshot := models.SyncSnapshot{
		ClipboardHistory: []models.ClipboardItem{{ID: 1, Content: "hello", Type: models.TypeText}},
		Settings:         models.Settings{"theme": "dark"},
		LastModified:     1700000000000,
		DeviceID:         "device_a",
	}
	plaintext, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	payload, err := svc.Encrypt(plaintext, key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if len(payload.IV) != 12 {
		t.Fatalf("iv length = %d, want 12", len(payload.IV))
	}

	got, err := svc.Decrypt(payload, key)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}

	var decoded models.SyncSnapshot
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.DeviceID != "device_a" || len(decoded.ClipboardHistory) != 1 || decoded.ClipboardHistory[0].Content != "hello" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	svc := NewKeyChainService()
	key, _ := svc.GenerateKey()

	p1, err := svc.Encrypt([]byte("same"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	p2, err := svc.Encrypt([]byte("same"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Equal(p1.IV, p2.IV) {
		t.Fatalf("nonce reused across calls")
	}
	if bytes.Equal(p1.Encrypted, p2.Encrypted) {
		t.Fatalf("ciphertexts are equal for distinct nonces")
	}
}

func TestDecrypt_TamperDetection(t *testing.T) {
	svc := NewKeyChainService()
	key, _ := svc.GenerateKey()

	payload, err := svc.Encrypt([]byte(`{"clipboardHistory":[]}`), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for i := range payload.Encrypted {
		tampered := models.EncryptedPayload{
			Encrypted: append([]byte(nil), payload.Encrypted...),
			IV:        payload.IV,
		}
		tampered.Encrypted[i] ^= 0x01

		if _, err := svc.Decrypt(tampered, key); !errors.Is(err, ErrDecryption) {
			t.Fatalf("byte %d: expected ErrDecryption, got %v", i, err)
		}
	}
}

func TestDecrypt_WrongKeyAndBadIV(t *testing.T) {
	svc := NewKeyChainService()
	key, _ := svc.GenerateKey()
	other, _ := svc.GenerateKey()

	payload, err := svc.Encrypt([]byte("secret"), key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if _, err := svc.Decrypt(payload, other); !errors.Is(err, ErrDecryption) {
		t.Fatalf("wrong key: expected ErrDecryption, got %v", err)
	}

	short := models.EncryptedPayload{Encrypted: payload.Encrypted, IV: payload.IV[:8]}
	if _, err := svc.Decrypt(short, key); !errors.Is(err, ErrDecryption) {
		t.Fatalf("short iv: expected ErrDecryption, got %v", err)
	}

	if _, err := svc.Decrypt(payload, key[:16]); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("short key: expected ErrInvalidKey, got %v", err)
	}
}

func TestJWK_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	key, _ := svc.GenerateKey()

	data, err := svc.EncodeJWK(key)
	if err != nil {
		t.Fatalf("EncodeJWK error: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("jwk is not json: %v", err)
	}
	if fields["kty"] != "oct" || fields["alg"] != "A256GCM" {
		t.Fatalf("unexpected jwk header: %v", fields)
	}

	got, err := svc.DecodeJWK(data)
	if err != nil {
		t.Fatalf("DecodeJWK error: %v", err)
	}
	if !bytes.Equal(got, key) {
		t.Fatalf("jwk round trip changed the key")
	}
}

func TestDecodeJWK_Malformed(t *testing.T) {
	svc := NewKeyChainService()

	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `nope`, ErrMalformedJWK},
		{"wrong kty", `{"kty":"RSA","k":"AAAA"}`, ErrMalformedJWK},
		{"bad base64", `{"kty":"oct","k":"***"}`, ErrMalformedJWK},
		{"short key", `{"kty":"oct","k":"` + base64.RawURLEncoding.EncodeToString(make([]byte, 16)) + `"}`, ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.DecodeJWK([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestWrapUnwrapKey(t *testing.T) {
	svc := fastKeyChain()
	key, _ := svc.GenerateKey()

	blob, err := svc.WrapKey(key, "correct horse battery staple")
	if err != nil {
		t.Fatalf("WrapKey error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("blob is not base64: %v", err)
	}
	if want := 16 + 12 + 32 + 16; len(raw) != want {
		t.Fatalf("blob length = %d, want %d", len(raw), want)
	}

	got, err := svc.UnwrapKey(blob, "correct horse battery staple")
	if err != nil {
		t.Fatalf("UnwrapKey error: %v", err)
	}
	if !bytes.Equal(got, key) {
		t.Fatalf("unwrapped key differs")
	}

	if _, err := svc.UnwrapKey(blob, "wrong passphrase"); !errors.Is(err, ErrDecryption) {
		t.Fatalf("wrong passphrase: expected ErrDecryption, got %v", err)
	}
}

func TestWrapKey_Validation(t *testing.T) {
	svc := fastKeyChain()
	key, _ := svc.GenerateKey()

	if _, err := svc.WrapKey(key, ""); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
	if _, err := svc.WrapKey(key[:10], "p"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
	if _, err := svc.UnwrapKey("!!!", "p"); !errors.Is(err, ErrMalformedBlob) {
		t.Fatalf("expected ErrMalformedBlob, got %v", err)
	}
	if _, err := svc.UnwrapKey(base64.StdEncoding.EncodeToString(make([]byte, 20)), "p"); !errors.Is(err, ErrMalformedBlob) {
		t.Fatalf("expected ErrMalformedBlob for short blob, got %v", err)
	}
}
