package script

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestCompileEmptyIsAbsent(t *testing.T) {
	for _, src := range []string{"", "   ", "\t"} {
		e, err := Compile(src)
		if err != nil {
			t.Fatalf("Compile(%q): unexpected error: %v", src, err)
		}
		if !e.Empty() {
			t.Errorf("Compile(%q) should be empty", src)
		}
		if got := e.NumberOr(nil, 7); got != 7 {
			t.Errorf("NumberOr default = %v, want 7", got)
		}
		if got := e.StringOr(nil, "white"); got != "white" {
			t.Errorf("StringOr default = %q, want white", got)
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		src  string
		env  Env
		want float64
	}{
		{"3", nil, 3},
		{"1.5 * 2", nil, 3},
		{"-20 + 20*cursubshot", Env{"cursubshot": 2}, 20},
		{"-20 + 20*cursubshot", Env{"cursubshot": 0}, -20},
		{"angletowardsplayer + 90", Env{"angletowardsplayer": 45.0}, 135},
		{"1 / 4", nil, 0.25},
	}
	for _, tt := range tests {
		got, err := MustCompile(tt.src).Number(EnvContext(tt.env))
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.src, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%q = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestVector(t *testing.T) {
	e := MustCompile("10, -4")
	v, err := e.Vector(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.X != 10 || v.Y != -4 {
		t.Errorf("got %+v, want (10,-4)", v)
	}

	v, err = MustCompile("cursubshot * 8, 0, 1").Vector(EnvContext(Env{"cursubshot": 3}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.X != 24 || v.Y != 0 {
		t.Errorf("got %+v, want (24,0)", v)
	}

	if _, err := MustCompile("5").Vector(nil); !errors.Is(err, ErrNotVector) {
		t.Errorf("scalar as vector: got %v, want ErrNotVector", err)
	}
}

func TestBareWordString(t *testing.T) {
	e := MustCompile("rainbow")
	s, err := e.String(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "rainbow" {
		t.Errorf("got %q, want rainbow", s)
	}
	if w, ok := e.Word(); !ok || w != "rainbow" {
		t.Errorf("Word() = %q, %v", w, ok)
	}

	// A bound variable wins over the literal reading.
	s, err = e.String(EnvContext(Env{"rainbow": "red"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "red" {
		t.Errorf("got %q, want red", s)
	}
}

func TestCommaInsideCallIsNotVector(t *testing.T) {
	if hasTopLevelComma("randfrom(1, 2)") {
		t.Error("comma inside call must not make a vector")
	}
	if !hasTopLevelComma("randfrom(1, 2), 3") {
		t.Error("top level comma not detected")
	}
}

func TestBuiltins(t *testing.T) {
	env := Builtins(rand.New(rand.NewSource(1)))
	ctx := EnvContext(env)

	pi, err := MustCompile("pi").Number(ctx)
	if err != nil || pi != math.Pi {
		t.Fatalf("pi = %v, %v", pi, err)
	}

	for i := 0; i < 50; i++ {
		v, err := MustCompile("randfrom(-20, 20)").Number(ctx)
		if err != nil {
			t.Fatalf("randfrom: %v", err)
		}
		if v < -20 || v > 20 {
			t.Fatalf("randfrom out of range: %v", v)
		}
	}
}

func TestNumberOrPanicsOnContentError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a non-numeric expression")
		}
	}()
	MustCompile(`"text"`).NumberOr(nil, 0)
}

func TestEnvWith(t *testing.T) {
	base := Env{"a": 1}
	ext := base.With("b", 2)
	if _, ok := base["b"]; ok {
		t.Error("With must not mutate the receiver")
	}
	if ext["a"] != 1 || ext["b"] != 2 {
		t.Errorf("unexpected env %v", ext)
	}
}

func TestLazyValuesOnlyRunWhenReferenced(t *testing.T) {
	calls := 0
	env := Env{
		"cursubshot": 2,
		"angletowardsplayer": Lazy(func() any {
			calls++
			return 90.0
		}),
	}

	if _, err := MustCompile("cursubshot * 3").Number(EnvContext(env)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Fatalf("lazy value computed for an expression that does not use it")
	}

	got, err := MustCompile("angletowardsplayer + 10").Number(EnvContext(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 || calls != 1 {
		t.Errorf("got %v after %d calls, want 100 after 1", got, calls)
	}
	if _, ok := env["angletowardsplayer"].(Lazy); !ok {
		t.Error("resolving must not overwrite the caller's env")
	}
}
