package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"mdcrypt/internal/mdcrypt"
)

// pipePrompter builds a TerminalPrompter reading from a pipe, which is
// never a terminal, so the plain line-read path is exercised.
func pipePrompter(t *testing.T, input string) (*TerminalPrompter, *bytes.Buffer) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	t.Cleanup(func() { r.Close() })

	go func() {
		w.WriteString(input)
		w.Close()
	}()

	var out bytes.Buffer
	return &TerminalPrompter{in: r, out: &out, reader: bufio.NewReader(r)}, &out
}

func TestTerminalPrompter_EncryptWithConfirmAndHint(t *testing.T) {
	p, out := pipePrompter(t, "secret\nsecret\nmy hint\n")

	got, err := p.PromptPassword("Encrypt folder: notes", true, true, mdcrypt.PasswordAndHint{})
	if err != nil {
		t.Fatalf("PromptPassword() error = %v", err)
	}

	if got.Password != "secret" {
		t.Errorf("password = %q, want secret", got.Password)
	}
	if got.Hint != "my hint" {
		t.Errorf("hint = %q, want my hint", got.Hint)
	}
	if !strings.Contains(out.String(), "Encrypt folder: notes") {
		t.Errorf("title not shown: %q", out.String())
	}
	if !strings.Contains(out.String(), "Confirm password:") {
		t.Errorf("confirmation not requested: %q", out.String())
	}
}

func TestTerminalPrompter_DecryptShowsSeedHint(t *testing.T) {
	p, out := pipePrompter(t, "secret\n")

	got, err := p.PromptPassword("Decrypt folder: notes", false, false, mdcrypt.PasswordAndHint{Hint: "the usual"})
	if err != nil {
		t.Fatalf("PromptPassword() error = %v", err)
	}

	if got.Password != "secret" {
		t.Errorf("password = %q, want secret", got.Password)
	}
	if got.Hint != "the usual" {
		t.Errorf("hint = %q, want seed hint preserved", got.Hint)
	}
	if !strings.Contains(out.String(), "Hint: the usual") {
		t.Errorf("seed hint not shown: %q", out.String())
	}
	if strings.Contains(out.String(), "Hint (optional):") {
		t.Errorf("hint collected while decrypting: %q", out.String())
	}
}

func TestTerminalPrompter_EmptyPasswordCancels(t *testing.T) {
	p, _ := pipePrompter(t, "\n")

	_, err := p.PromptPassword("Encrypt folder: notes", true, true, mdcrypt.PasswordAndHint{})
	if !errors.Is(err, mdcrypt.ErrPromptCancelled) {
		t.Errorf("PromptPassword() error = %v, want ErrPromptCancelled", err)
	}
}

func TestTerminalPrompter_EndOfInputCancels(t *testing.T) {
	p, _ := pipePrompter(t, "")

	_, err := p.PromptPassword("Encrypt folder: notes", true, false, mdcrypt.PasswordAndHint{})
	if !errors.Is(err, mdcrypt.ErrPromptCancelled) {
		t.Errorf("PromptPassword() error = %v, want ErrPromptCancelled", err)
	}
}

func TestTerminalPrompter_ConfirmMismatch(t *testing.T) {
	p, _ := pipePrompter(t, "secret\ntypo\n")

	_, err := p.PromptPassword("Encrypt folder: notes", true, true, mdcrypt.PasswordAndHint{})
	if err == nil {
		t.Fatal("PromptPassword() with mismatched confirmation succeeded, want error")
	}
	if errors.Is(err, mdcrypt.ErrPromptCancelled) {
		t.Errorf("mismatch reported as cancellation: %v", err)
	}
}
