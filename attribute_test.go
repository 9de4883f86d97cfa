package quadgl_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/quadgl"
)

func TestNewAttribute(t *testing.T) {
	a, err := quadgl.NewAttribute("position", 3, 6, quadgl.Float)
	if err != nil {
		t.Fatalf("NewAttribute returned error: %v", err)
	}
	if a.Name != "position" || a.Size != 3 || a.Type != quadgl.Float {
		t.Errorf("unexpected descriptor: %+v", a)
	}
	if a.Stride != 24 {
		t.Errorf("expected stride 24 for 6 float components, got %d", a.Stride)
	}
	if a.Offset != 0 {
		t.Errorf("expected offset 0, got %d", a.Offset)
	}
	if a.Normalized {
		t.Error("expected normalized off by default")
	}
}

func TestNewAttributeComponentOffset(t *testing.T) {
	// texCoord sits after a 3-component position in a 6-component vertex.
	a, err := quadgl.NewAttribute("texCoord", 2, 6, quadgl.Float, quadgl.WithComponentOffset(3))
	if err != nil {
		t.Fatalf("NewAttribute returned error: %v", err)
	}
	if a.Stride != 24 {
		t.Errorf("expected stride 24, got %d", a.Stride)
	}
	if a.Offset != 12 {
		t.Errorf("expected offset 12 for 3 float components, got %d", a.Offset)
	}
}

func TestNewAttributeComponentByteSize(t *testing.T) {
	a, err := quadgl.NewAttribute("packedColor", 4, 8, quadgl.UnsignedByte,
		quadgl.WithComponentByteSize(1), quadgl.WithComponentOffset(4))
	if err != nil {
		t.Fatalf("NewAttribute returned error: %v", err)
	}
	if a.Stride != 8 {
		t.Errorf("expected stride 8 for 8 one-byte components, got %d", a.Stride)
	}
	if a.Offset != 4 {
		t.Errorf("expected offset 4, got %d", a.Offset)
	}
}

func TestNewAttributeNormalized(t *testing.T) {
	a, err := quadgl.NewAttribute("packedColor", 4, 4, quadgl.UnsignedByte, quadgl.WithNormalized(true))
	if err != nil {
		t.Fatalf("NewAttribute returned error: %v", err)
	}
	if !a.Normalized {
		t.Error("expected normalized set")
	}
}

func TestNewAttributeInvalidCount(t *testing.T) {
	for _, n := range []int{0, 5, -1} {
		_, err := quadgl.NewAttribute("bad", n, 4, quadgl.Float)
		var ierr *quadgl.InvalidAttributeError
		if !errors.As(err, &ierr) {
			t.Fatalf("numElements %d: expected *InvalidAttributeError, got %v", n, err)
		}
		if ierr.Name != "bad" || ierr.NumElements != n {
			t.Errorf("numElements %d: unexpected error fields %+v", n, ierr)
		}
	}

	_, err := quadgl.NewAttribute("bad", 5, 4, quadgl.Float)
	if want := `attribute "bad": element count 5 outside 1..4`; err == nil || err.Error() != want {
		t.Errorf("expected message %q, got %v", want, err)
	}
}
