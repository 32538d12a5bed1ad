package sessionx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/livex/pkg/sessionx"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := sessionx.NewSigner("test-secret", time.Hour, "livex-test")

	session := map[string]interface{}{
		"view":    "OrdersLive",
		"user_id": "u-1",
	}

	token, err := signer.Sign(session)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	got, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got["view"] != "OrdersLive" || got["user_id"] != "u-1" {
		t.Fatalf("payload mismatch: %v", got)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	signer := sessionx.NewSigner("test-secret", time.Hour, "")

	token, err := signer.Sign(map[string]interface{}{"view": "OrdersLive"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + "AAAA"

	if _, err := signer.Verify(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer := sessionx.NewSigner("secret-a", time.Hour, "")
	other := sessionx.NewSigner("secret-b", time.Hour, "")

	token, err := signer.Sign(map[string]interface{}{"view": "OrdersLive"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Fatal("token signed with a different key accepted")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	signer := sessionx.NewSigner("test-secret", -time.Minute, "")

	token, err := signer.Sign(map[string]interface{}{"view": "OrdersLive"})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := signer.Verify(token); err == nil {
		t.Fatal("expired token accepted")
	}
}
