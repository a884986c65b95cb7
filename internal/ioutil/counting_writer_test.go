package ioutil_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gourl/internal/ioutil"
)

var errWrite = errors.New("write failed")

type limitWriter struct {
	sb    strings.Builder
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	room := w.limit - w.sb.Len()
	if room <= 0 {
		return 0, errWrite
	}
	if len(p) > room {
		w.sb.Write(p[:room])
		return room, errWrite
	}
	return w.sb.Write(p)
}

func TestCountingWriter_WriteStrings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		limit   int
		in      []string
		wantOut string
		wantNum int
		wantErr error
	}{
		{"empty", 100, nil, "", 0, nil},
		{"all pieces", 100, []string{"http", ":", "//", "example.com"}, "http://example.com", 18, nil},
		{"short write", 6, []string{"http", ":", "//", "example.com"}, "http:/", 6, errWrite},
		{"stops after error", 4, []string{"http", ":", "//"}, "http", 4, errWrite},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			w := &limitWriter{limit: c.limit}
			gotNum, gotErr := ioutil.NewCountingWriter(w).WriteStrings(c.in...).Result()
			if diff := cmp.Diff(gotErr, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("cw.WriteStrings(%q).Result() error = %v, want %v\ndiff (-got +want):\n%v", c.in, gotErr, c.wantErr, diff)
			}
			if gotNum != c.wantNum {
				t.Errorf("cw.WriteStrings(%q).Result() num = %d, want %d", c.in, gotNum, c.wantNum)
			}
			if got := w.sb.String(); got != c.wantOut {
				t.Errorf("written = %q, want %q", got, c.wantOut)
			}
		})
	}
}

func TestCountingWriter_WriteIf(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.NewCountingWriter(&sb)
	cw.WriteIf(true, "a", "b").WriteIf(false, "c").WriteIf(true, "d")
	if got, want := sb.String(), "abd"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
	if num, err := cw.Result(); num != 3 || err != nil {
		t.Errorf("cw.Result() = (%d, %v), want (3, nil)", num, err)
	}
}

func TestCountingWriter_Call(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	cw := ioutil.GetCountingWriter(&sb)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteStrings("?")
	cw.Call(func(w io.Writer) (int, error) { return io.WriteString(w, "a=1") })
	cw.Call(func(io.Writer) (int, error) { return 0, errWrite })
	cw.Call(func(w io.Writer) (int, error) { return io.WriteString(w, "&b=2") })

	num, err := cw.Result()
	if !errors.Is(err, errWrite) {
		t.Errorf("cw.Result() error = %v, want %v", err, errWrite)
	}
	if num != 4 {
		t.Errorf("cw.Result() num = %d, want 4", num)
	}
	if got, want := sb.String(), "?a=1"; got != want {
		t.Errorf("written = %q, want %q", got, want)
	}
}
