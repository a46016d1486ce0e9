package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterPiped(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("  alice  \n s3cret \nlast"), Out: &out}

	name, err := p.Line("Username")
	if err != nil || name != "alice" {
		t.Fatalf("Line() = %q, %v", name, err)
	}
	pw, err := p.Secret("Password")
	if err != nil || pw != " s3cret " {
		t.Fatalf("Secret() = %q, %v", pw, err)
	}
	last, err := p.Line("Email")
	if err != nil || last != "last" {
		t.Fatalf("Line() at EOF = %q, %v", last, err)
	}
	if _, err := p.Line("More"); err == nil {
		t.Error("expected error on exhausted input")
	}

	if got := out.String(); !strings.Contains(got, "Username: ") || !strings.Contains(got, "Password: ") {
		t.Errorf("prompts not written: %q", got)
	}
	if p.Interactive() {
		t.Error("a string reader is not interactive")
	}
}

func TestLineOrSkipsPromptWhenSet(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("typed\n"), Out: &out}

	got, err := p.LineOr(" given ", "Username")
	if err != nil || got != "given" {
		t.Fatalf("LineOr() = %q, %v", got, err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected prompt %q", out.String())
	}

	got, err = p.LineOr("", "Username")
	if err != nil || got != "typed" {
		t.Fatalf("LineOr() = %q, %v", got, err)
	}
}
