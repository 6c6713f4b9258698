package bounce

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPromptValidFirstTry(t *testing.T) {
	var out bytes.Buffer
	in, err := Prompt(strings.NewReader("10\n1\n0.5\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Initial != 10 || in.Minimum != 1 || in.Efficiency != 0.5 {
		t.Errorf("unexpected inputs: %+v", in)
	}
}

func TestPromptRetriesOnNonNumeric(t *testing.T) {
	var out bytes.Buffer
	in, err := Prompt(strings.NewReader("ten\n10\n1\n0.5\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Initial != 10 {
		t.Errorf("expected retry to succeed, got %+v", in)
	}
	if !strings.Contains(out.String(), "Make sure all inputs are numbers") {
		t.Error("expected a non-numeric input message")
	}
}

func TestPromptRetriesOnDomainViolation(t *testing.T) {
	var out bytes.Buffer
	in, err := Prompt(strings.NewReader("10\n20\n0.5\n10\n1\n0.5\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Minimum != 1 {
		t.Errorf("expected second attempt to be used, got %+v", in)
	}
	if !strings.Contains(out.String(), "less than the initial height") {
		t.Error("expected the specific violation message")
	}
}

func TestPromptEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := Prompt(strings.NewReader(""), &out)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
}
