package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("HashPassword() expected 6 parts, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("HashPassword() algorithm = %q, want %q", parts[1], "argon2id")
	}
	if parts[2] != "v=19" {
		t.Errorf("HashPassword() version = %q, want %q", parts[2], "v=19")
	}
	if parts[3] != "m=65536,t=3,p=2" {
		t.Errorf("HashPassword() params = %q, want %q", parts[3], "m=65536,t=3,p=2")
	}
}

func TestHasherCustomParams(t *testing.T) {
	params := HashParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
	salt := bytes.Repeat([]byte{0xfa}, 16)

	first, err := NewHasher(params, bytes.NewReader(salt)).Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	second, err := NewHasher(params, bytes.NewReader(salt)).Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Hash() with identical salt differs: %q vs %q", first, second)
	}
	if !strings.Contains(first, "$m=8192,t=1,p=1$") {
		t.Errorf("Hash() = %q, missing custom parameters", first)
	}

	match, err := VerifyPassword("s3cret", first)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() returned false for correct password")
	}
}

func TestHasherShortSaltSource(t *testing.T) {
	_, err := NewHasher(DefaultHashParams(), bytes.NewReader([]byte{1, 2})).Hash("pw")
	if err == nil {
		t.Fatal("Hash() expected error when salt source runs dry")
	}
}

func TestVerifyPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() returned true for wrong password")
	}
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	for _, encoded := range []string{
		"invalid-hash-format",
		"$bcrypt$v=19$m=1,t=1,p=1$AAAA$AAAA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$AAAA",
	} {
		if _, err := VerifyPassword("password", encoded); err != ErrInvalidHashFormat {
			t.Errorf("VerifyPassword(%q) error = %v, want %v", encoded, err, ErrInvalidHashFormat)
		}
	}

	if _, err := VerifyPassword("password", "$argon2id$v=16$m=1,t=1,p=1$AAAA$AAAA"); err != ErrIncompatibleVersion {
		t.Errorf("VerifyPassword() error = %v, want %v", err, ErrIncompatibleVersion)
	}
}
