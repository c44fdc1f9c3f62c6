package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	v, c, b := Version, GitCommit, BuildTime
	return func() {
		Version, GitCommit, BuildTime = v, c, b
	}
}

func TestGet_Dev(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
}

func TestGet_Release(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abcdef1234567"
	BuildTime = "2026-10-01T10:30:00Z"

	info := Get()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
	if info.GitCommit != "abcdef1" {
		t.Errorf("expected commit truncated to 7 chars, got %q", info.GitCommit)
	}
	if info.BuildTime != "2026-10-01T10:30:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
}

func TestShortAndUserAgent(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"
	GitCommit = "abc1234"

	if s := Short(); !strings.HasPrefix(s, "1.2.0-abc1234") {
		t.Errorf("unexpected short version %q", s)
	}
	if ua := UserAgent(); !strings.HasPrefix(ua, "bukku-go/1.2.0-abc1234") {
		t.Errorf("unexpected user agent %q", ua)
	}
}
