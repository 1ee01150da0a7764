package models_test

import (
	"testing"

	"github.com/hireloop/intake/internal/models"
)

func TestTripleHash_Deterministic(t *testing.T) {
	a := models.TripleHash("a@b.c", "resume", "job")
	b := models.TripleHash("a@b.c", "resume", "job")
	if a != b {
		t.Fatalf("hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256 got %q", a)
	}
}

func TestTripleHash_FieldBoundaries(t *testing.T) {
	// concatenation ambiguity must not collide
	a := models.TripleHash("a@b.c", "resume", "job")
	b := models.TripleHash("a@b.cresume", "", "job")
	if a == b {
		t.Fatalf("expected distinct hashes for shifted field boundaries")
	}
}

func TestTripleHash_SensitiveToEveryField(t *testing.T) {
	base := models.TripleHash("a@b.c", "resume", "job")
	for _, h := range []string{
		models.TripleHash("x@b.c", "resume", "job"),
		models.TripleHash("a@b.c", "resume ", "job"),
		models.TripleHash("a@b.c", "resume", "Job"),
	} {
		if h == base {
			t.Fatalf("expected distinct hash")
		}
	}
}
