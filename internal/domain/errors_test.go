package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "yamlinventory.load",
		Kind: KindInvalidConfig,
		Path: "inventories/basket.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}

	msg := err.Error()
	for _, want := range []string{"yamlinventory.load", "invalid_config", "path=inventories/basket.yaml", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "x", Kind: KindNotFound}
	if !IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindExecution) {
		t.Fatalf("expected IsKind not to match another kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("expected plain errors not to match")
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("domain.parse_color", "unknown color %q", "blue")
	if !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected errors.Is(ErrInvalidArgument)")
	}
	if !strings.Contains(err.Error(), `"blue"`) {
		t.Fatalf("expected argument in message, got %v", err)
	}
}
