package service

import (
	"testing"

	"careermap_backend/internals/configs"
)

func TestRefreshHash(t *testing.T) {
	configs.JWTRefreshSecret = "test-refresh-secret"

	a := RefreshHash("token-one")
	b := RefreshHash("token-one")
	c := RefreshHash("token-two")

	if a != b {
		t.Error("same token must hash identically")
	}
	if a == c {
		t.Error("different tokens must not collide")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
