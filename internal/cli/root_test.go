package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/service"
)

func testConfig() config.Config {
	return config.Config{Env: "test", MaxCount: 50, MaxLength: 128}
}

func runRoot(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd(testConfig())
	var out bytes.Buffer
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootOnce(t *testing.T) {
	out, err := runRoot(t, "", "--once", "-c", "3", "-l", "12", "--punct=false", "--exclude-duplicates")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	for _, p := range lines {
		if len(p) != 12 {
			t.Errorf("password %q length = %d, want 12", p, len(p))
		}
		if strings.ContainsAny(p, "!#$%&*+-=?@^_.") {
			t.Errorf("password %q contains punctuation", p)
		}
	}
}

func TestRootOnceHash(t *testing.T) {
	out, err := runRoot(t, "", "--once", "--hash", "-l", "10")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	password, hash, ok := strings.Cut(strings.TrimSuffix(out, "\n"), "  ")
	if !ok {
		t.Fatalf("output %q lacks a hash column", out)
	}
	match, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Errorf("hash %q does not verify password %q", hash, password)
	}
}

func TestRootOnceRejected(t *testing.T) {
	_, err := runRoot(t, "", "--once", "-l", "3")
	if !errors.Is(err, crypto.ErrLengthInsufficient) {
		t.Fatalf("Execute() error = %v, want %v", err, crypto.ErrLengthInsufficient)
	}

	_, err = runRoot(t, "", "--once", "-c", "51")
	if !errors.Is(err, service.ErrCountTooLarge) {
		t.Fatalf("Execute() error = %v, want %v", err, service.ErrCountTooLarge)
	}
}

func TestRootInteractive(t *testing.T) {
	out, err := runRoot(t, "2\n6\ny\ny\ny\ny\nn\nn\nn\n")
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if got := passwordsAfterHeader(out); len(got) != 2 {
		t.Errorf("got %d passwords, want 2:\n%s", len(got), out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if _, err := runRoot(t, "", "extra"); err == nil {
		t.Fatal("Execute() expected error for positional argument")
	}
}
