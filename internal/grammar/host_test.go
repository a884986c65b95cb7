package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gourl/internal/grammar"
)

func TestClassifyHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host string
		want grammar.HostKind
	}{
		{"", grammar.HostNone},
		{"127.0.0.1", grammar.HostIPv4},
		{"[::1]", grammar.HostIPv6},
		{"[fe80::1%25eth0]", grammar.HostIPv6},
		{"[127.0.0.1]", grammar.HostInvalid},
		{"[::1", grammar.HostInvalid},
		{"google.com", grammar.HostName},
		{"localhost", grammar.HostName},
		{"xn--d1acufc.xn--p1ai", grammar.HostName},
		{"ex%41mple.com", grammar.HostName},
		{"exa mple.com", grammar.HostInvalid},
		{"bad%zz", grammar.HostInvalid},
		{"@host", grammar.HostInvalid},
	}

	for _, c := range cases {
		t.Run(c.host, func(t *testing.T) {
			t.Parallel()

			if got := grammar.ClassifyHost(c.host); got != c.want {
				t.Errorf("grammar.ClassifyHost(%q) = %v, want %v", c.host, got, c.want)
			}
		})
	}
}

func TestHostKind_String(t *testing.T) {
	t.Parallel()

	if got, want := grammar.HostIPv6.String(), "ipv6"; got != want {
		t.Errorf("grammar.HostIPv6.String() = %q, want %q", got, want)
	}
	if got, want := grammar.HostKind(42).String(), "HostKind(42)"; got != want {
		t.Errorf("grammar.HostKind(42).String() = %q, want %q", got, want)
	}
}
