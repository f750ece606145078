package platform

import (
	"runtime"
	"strings"
	"testing"
)

func TestUserAgentFragment(t *testing.T) {
	p := Platform{OS: "linux", Arch: "amd64"}
	if got := p.UserAgentFragment(); got != "(linux; amd64)" {
		t.Errorf("expected %q, got %q", "(linux; amd64)", got)
	}
}

func TestInstallClass(t *testing.T) {
	cases := []struct {
		hostname string
		want     string
	}{
		{"build-07.nimbus.dev", InstallClassInternal},
		{"BUILD-07.NIMBUS.DEV", InstallClassInternal},
		{"laptop.example.com", InstallClassExternal},
		{"nimbus.dev.example.com", InstallClassExternal},
		{"", InstallClassExternal},
	}
	for _, tc := range cases {
		p := Platform{Hostname: tc.hostname}
		if got := p.InstallClass(); got != tc.want {
			t.Errorf("hostname %q: expected %s, got %s", tc.hostname, tc.want, got)
		}
	}
}

func TestCurrentReflectsRuntime(t *testing.T) {
	p := Current()
	if p.OS != runtime.GOOS || p.Arch != runtime.GOARCH {
		t.Errorf("expected %s/%s, got %s/%s", runtime.GOOS, runtime.GOARCH, p.OS, p.Arch)
	}
	if !strings.Contains(p.UserAgentFragment(), p.OS) {
		t.Errorf("fragment %q does not mention the OS", p.UserAgentFragment())
	}
}
