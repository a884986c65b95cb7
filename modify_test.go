package gourl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gourl"
	"github.com/ghettovoice/gourl/query"
)

func TestModify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     any
		overrides []gourl.Override
		want      string
		wantErr   error
	}{
		{"no overrides", "http://google.com/", nil, "http://google.com/", nil},
		{"set scheme", "http://google.com/", []gourl.Override{gourl.Set(gourl.FieldScheme, "https")}, "https://google.com/", nil},
		{"clear port", "http://h:80/x", []gourl.Override{gourl.Clear(gourl.FieldPort)}, "http://h/x", nil},
		{"clear scheme keeps authority", "http://h/x", []gourl.Override{gourl.Clear(gourl.FieldScheme)}, "//h/x", nil},
		{"clear path", "http://h/x?y=1", []gourl.Override{gourl.Clear(gourl.FieldPath)}, "http://h?y=1", nil},
		{
			"set credentials",
			"http://h/",
			[]gourl.Override{gourl.Set(gourl.FieldUsername, "u"), gourl.Set(gourl.FieldPassword, "p")},
			"http://u:p@h/",
			nil,
		},
		{
			"overrides applied in order",
			"http://h/",
			[]gourl.Override{gourl.Set(gourl.FieldHostname, "a"), gourl.Set(gourl.FieldHostname, "b")},
			"http://b/",
			nil,
		},
		{
			"set query",
			"http://h/?old=1",
			[]gourl.Override{gourl.SetQuery(query.Query{}.Append("q", "a b"))},
			"http://h/?q=a%20b",
			nil,
		},
		{"clear query", "http://h/?a=1#f", []gourl.Override{gourl.ClearQuery()}, "http://h/#f", nil},
		{
			"merge query",
			"http://h/?a=1&b=2",
			[]gourl.Override{gourl.MergeQuery(query.Query{}.Append("b", "x").Append("c", query.Raw("%41")))},
			"http://h/?a=1&b=x&c=%41",
			nil,
		},
		{"merge into absent query", "http://h/", []gourl.Override{gourl.MergeQuery(query.Query{}.Append("a", 1))}, "http://h/?a=1", nil},
		{"set param", "http://h/?a=1&a=2&b=3", []gourl.Override{gourl.SetParam("a", 5)}, "http://h/?a=5&b=3", nil},
		{"delete param", "http://h/?a=1", []gourl.Override{gourl.DelParam("a")}, "http://h/", nil},
		{"nil override skipped", "http://h/", []gourl.Override{nil}, "http://h/", nil},
		{"bytes input", []byte("http://h/"), []gourl.Override{gourl.Set(gourl.FieldPort, "8080")}, "http://h:8080/", nil},
		{
			"password without username",
			"http://h/",
			[]gourl.Override{gourl.Set(gourl.FieldPassword, "p")},
			"",
			gourl.ErrValidation,
		},
		{"invalid input", 42, nil, "", gourl.ErrInvalidInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := gourl.Modify(c.input, c.overrides...)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("gourl.Modify(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("gourl.Modify(%v) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		want    gourl.Field
		wantErr error
	}{
		{"scheme", gourl.FieldScheme, nil},
		{"Hostname", gourl.FieldHostname, nil},
		{"host", gourl.FieldHostname, nil},
		{"user", gourl.FieldUsername, nil},
		{"PASSWORD", gourl.FieldPassword, nil},
		{"port", gourl.FieldPort, nil},
		{"path", gourl.FieldPath, nil},
		{"fragment", gourl.FieldFragment, nil},
		{"query", 0, gourl.ErrInvalidArgument},
		{"", 0, gourl.ErrInvalidArgument},
	}

	for _, c := range cases {
		got, err := gourl.ParseField(c.name)
		if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
			t.Errorf("gourl.ParseField(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.name, err, c.wantErr, diff)
		}
		if got != c.want {
			t.Errorf("gourl.ParseField(%q) = %v, want %v", c.name, got, c.want)
		}
	}

	for f := gourl.FieldScheme; f <= gourl.FieldFragment; f++ {
		got, err := gourl.ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("gourl.ParseField(%q) = %v, %v, want %v, nil", f.String(), got, err, f)
		}
	}
	if got, want := gourl.Field(0).String(), "Field(0)"; got != want {
		t.Errorf("gourl.Field(0).String() = %q, want %q", got, want)
	}

	var f gourl.Field
	if err := f.UnmarshalText([]byte("port")); err != nil || f != gourl.FieldPort {
		t.Errorf("field.UnmarshalText(\"port\") = %v, field = %v, want nil, %v", err, f, gourl.FieldPort)
	}
	if _, err := gourl.Field(99).MarshalText(); err == nil {
		t.Errorf("gourl.Field(99).MarshalText() error = nil, want %v", gourl.ErrInvalidArgument)
	}
}
