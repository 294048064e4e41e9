package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev", Commit: "none"}, "dev"},
		{Info{Version: "v1.0.0"}, "v1.0.0"},
		{Info{Version: "v1.0.0", Commit: "1a2b3c4d5e6f"}, "v1.0.0 (1a2b3c4)"},
		{Info{Version: "v1.0.0", Commit: "abc"}, "v1.0.0 (abc)"},
		{Info{Version: "v1.0.0", Commit: "1a2b3c4d5e6f", Modified: true}, "v1.0.0 (1a2b3c4, modified)"},
	}
	for _, tt := range tests {
		if got := tt.info.Short(); got != tt.want {
			t.Errorf("%+v.Short() = %q, want %q", tt.info, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeefcafe"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := merge(Info{Version: "dev", Commit: "none", Date: "unknown"}, bi)
	want := Info{Version: "v0.4.1", Commit: "deadbeefcafe", Date: "2026-01-02T03:04:05Z", Modified: true}
	if got != want {
		t.Errorf("unstamped merge = %+v, want %+v", got, want)
	}

	stamped := Info{Version: "v1.0.0", Commit: "0123456", Date: "2026-10-01"}
	got = merge(stamped, bi)
	if got.Version != "v1.0.0" || got.Commit != "0123456" || got.Date != "2026-10-01" {
		t.Errorf("ldflags values should win: %+v", got)
	}

	got = merge(Info{Version: "dev"}, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got.Version != "dev" {
		t.Errorf("(devel) should not replace dev: %+v", got)
	}
}

func TestTemplate(t *testing.T) {
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} ") || !strings.Contains(tmpl, "built: ") {
		t.Errorf("Template() = %q", tmpl)
	}
}
