package file

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Load(ctx, "klagtrack_data"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Save(ctx, "klagtrack_data", `{"2024-03-01":{}}`); err != nil {
		t.Fatalf("save: %v", err)
	}
	v, ok, err := s.Load(ctx, "klagtrack_data")
	if err != nil || !ok || v != `{"2024-03-01":{}}` {
		t.Fatalf("load = %q, %v, %v", v, ok, err)
	}
}

func TestStoreRejectsPathEscapes(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	for _, key := range []string{"", "../evil", "a/b", `a\b`} {
		if err := s.Save(ctx, key, "x"); err == nil {
			t.Fatalf("key %q should be rejected", key)
		}
	}
}
