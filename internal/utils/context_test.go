package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if got := AccountIDCtxKey.String(); got != "accountID" {
		t.Errorf("expected 'accountID', got %q", got)
	}
	if got := DeviceIDCtxKey.String(); got != "deviceID" {
		t.Errorf("expected 'deviceID', got %q", got)
	}
}

func TestGetAccountIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"present", WithAccountID(context.Background(), "alice"), "alice", true},
		{"missing", context.Background(), "", false},
		{"empty", WithAccountID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), AccountIDCtxKey, 42), "", false},
		{"plain string key", context.WithValue(context.Background(), "accountID", "alice"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetAccountIDFromContext(tt.ctx)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetDeviceIDFromContext(t *testing.T) {
	ctx := WithDeviceID(WithAccountID(context.Background(), "alice"), "device_1")

	got, ok := GetDeviceIDFromContext(ctx)
	if !ok || got != "device_1" {
		t.Errorf("got (%q, %v), want (device_1, true)", got, ok)
	}

	if _, ok := GetDeviceIDFromContext(context.Background()); ok {
		t.Error("expected missing device id")
	}
}
