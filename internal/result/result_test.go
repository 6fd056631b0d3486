package result

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestMap(t *testing.T) {
	r := Map(Ok(2), func(v int) string { return strconv.Itoa(v * 2) })
	got, ok := r.Value()
	if !ok || got != "4" {
		t.Errorf("Map(Ok(2)) = %q, %v; want \"4\", true", got, ok)
	}

	called := false
	failed := Map(Fail[int](New("boom", "")), func(v int) int {
		called = true
		return v
	})
	if called {
		t.Error("Map called f on a failure")
	}
	if failed.IsOk() {
		t.Error("Map on failure returned success")
	}
}

func TestBind(t *testing.T) {
	half := func(v int) Result[int] {
		if v%2 != 0 {
			return Fail[int](New("odd", strconv.Itoa(v)))
		}
		return Ok(v / 2)
	}

	tests := []struct {
		name    string
		input   int
		want    int
		wantErr string
	}{
		{"even twice", 8, 2, ""},
		{"odd after first step", 6, 0, "odd"},
		{"odd at once", 5, 0, "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Bind(Bind(Ok(tt.input), half), half)
			got, err := r.Unwrap()
			if tt.wantErr != "" {
				if err == nil || !strings.HasPrefix(err.Error(), tt.wantErr) {
					t.Fatalf("expected error %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestThen(t *testing.T) {
	r := Then(Ok("ignored"), func() Result[int] { return Ok(7) })
	if v, _ := r.Value(); v != 7 {
		t.Errorf("Then = %d, want 7", v)
	}

	ran := false
	r = Then(Fail[string](New("first", "")), func() Result[int] {
		ran = true
		return Ok(1)
	})
	if ran {
		t.Error("Then ran the second step after a failure")
	}
	if r.Error().Message != "first" {
		t.Errorf("Then lost the first error: %v", r.Err())
	}
}

func TestGuard(t *testing.T) {
	if !Guard(true, func() *Error { return New("never", "") }).IsOk() {
		t.Error("Guard(true) failed")
	}
	r := Guard(false, func() *Error { return New("expected end", "rest") })
	if r.IsOk() || r.Error().Message != "expected end" {
		t.Errorf("Guard(false) = %v", r.Err())
	}
}

func TestFailNil(t *testing.T) {
	r := Fail[int](nil)
	if r.IsOk() {
		t.Fatal("Fail(nil) reported success")
	}
	if r.Err() == nil {
		t.Fatal("Fail(nil) has no error")
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name    string
		message string
		rest    string
		want    string
	}{
		{"plain", "expected colon", "b c", `expected colon, near "b c"`},
		{"escapes breaks and quotes", "expected end", "a\r\n\"b\"", `expected end, near "a\r\n\"b\""`},
		{"truncates", "unexpected", strings.Repeat("x", 80), `unexpected, near "` + strings.Repeat("x", 50) + `"`},
		{"empty rest", "expected end", "", `expected end, near ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.message, tt.rest).Error(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExcerpt_CountsCharacters(t *testing.T) {
	in := strings.Repeat("é", 60)
	got := Excerpt(in)
	if n := len([]rune(got)); n != ExcerptLength {
		t.Errorf("excerpt has %d characters, want %d", n, ExcerptLength)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := Wrap("integer overflow", "99999999999999999999", strconv.ErrRange)
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("errors.Is did not find the cause")
	}
	var target *Error
	if !errors.As(Fail[int](err).Err(), &target) {
		t.Error("errors.As did not find *Error")
	}
}
