package session

import "testing"

func TestSignAndParseToken(t *testing.T) {
	const secret = "test-secret"

	value := SignToken(secret, "abc-123")

	token, ok := ParseToken(secret, value)
	if !ok {
		t.Fatal("expected valid signature")
	}
	if token != "abc-123" {
		t.Fatalf("token = %q, want %q", token, "abc-123")
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	const secret = "test-secret"

	cases := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no signature", "abc-123"},
		{"empty token", ".firma"},
		{"bad signature", "abc-123.bogus"},
		{"other secret", SignToken("otro-secret", "abc-123")},
		{"swapped token", "zzz-999." + SignToken(secret, "abc-123")[8:]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ParseToken(secret, tc.value); ok {
				t.Fatalf("ParseToken accepted %q", tc.value)
			}
		})
	}
}
