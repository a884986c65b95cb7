package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/gourl/query"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  query.Query
	}{
		{"empty", "", nil},
		{"question mark only", "?", nil},
		{"only separators", "&&", nil},
		{
			"simple",
			"a=1&b=2&c=3",
			query.Query{}.Append("a", "1").Append("b", "2").Append("c", "3"),
		},
		{"leading question mark", "?a=1", query.Query{}.Append("a", "1")},
		{"bytes", []byte("a=1"), query.Query{}.Append("a", "1")},
		{"absent and empty value", "a&b=", query.Query{}.Append("a", nil).Append("b", "")},
		{
			"duplicates preserved",
			"a=1&b=2&a=3",
			query.Query{}.Append("a", "1").Append("b", "2").Append("a", "3"),
		},
		{"percent-decoded", "a%20b=c%26d%3D", query.Query{}.Append("a b", "c&d=")},
		{"plus is not space", "q=b+c", query.Query{}.Append("q", "b+c")},
		{"split on first equal sign", "a=1=2", query.Query{}.Append("a", "1=2")},
		{"empty pairs skipped", "a=1&&b=2&", query.Query{}.Append("a", "1").Append("b", "2")},
		{"malformed escape kept", "a=%zz%4", query.Query{}.Append("a", "%zz%4")},
		{"empty key", "=x", query.Query{}.Append("", "x")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			var got query.Query
			switch in := c.input.(type) {
			case string:
				got = query.Decode(in)
			case []byte:
				got = query.Decode(in)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("query.Decode(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
			if c.want == nil && got != nil {
				t.Errorf("query.Decode(%q) = %#v, want nil", c.input, got)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []string{
		"a=1&b=2&c=3",
		"a=&b=x",
		"a%20b=c%26d",
		"x=1&x=2&x=3",
		"k=%E4%B8%96",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			got, err := query.Encode(query.Decode(in))
			if err != nil {
				t.Fatalf("query.Encode(query.Decode(%q)) error = %v, want nil", in, err)
			}
			if got != in {
				t.Errorf("query.Encode(query.Decode(%q)) = %q, want %q", in, got, in)
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	in := "a=1&b=hello%20world&c=%E4%B8%96&d&e="
	b.ResetTimer()
	for b.Loop() {
		if q := query.Decode(in); q.Len() != 5 {
			b.Fatalf("query.Decode(%q).Len() = %d, want 5", in, q.Len())
		}
	}
}
