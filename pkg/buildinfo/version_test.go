package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFillFrom(t *testing.T) {
	restore(t)
	Version, Commit, Date = "dev", "none", "unknown"

	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %q %q %q", Version, Commit, Date)
	}
}

func TestFillFromKeepsLdflags(t *testing.T) {
	restore(t)
	Version, Commit, Date = "v1.0.0", "deadbeef", "2025-12-20"

	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v1.0.0" || Commit != "deadbeef" || Date != "2025-12-20" {
		t.Errorf("ldflags values overwritten: %q %q %q", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	restore(t)
	Version, Commit, Date = "v1.0.0", "deadbeef", "2025-12-20"

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.0.0\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); got != "version: v1.0.0\ncommit: deadbeef\nbuilt: 2025-12-20" {
		t.Errorf("String() = %q", got)
	}
}
