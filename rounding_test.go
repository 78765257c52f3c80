package fraction

import (
	"errors"
	"strings"
	"testing"
)

func TestRoundingMode_ZeroValue(t *testing.T) {
	var got RoundingMode
	if got != RoundHalfUp {
		t.Errorf("RoundingMode(0) = %v, want %v", got, RoundHalfUp)
	}
}

func TestRoundingMode_increment(t *testing.T) {
	tests := []struct {
		mode        RoundingMode
		guard, last byte
		neg         bool
		want        bool
	}{
		{RoundUp, 1, 0, false, true},
		{RoundUp, 1, 0, true, true},
		{RoundUp, 9, 9, false, true},

		{RoundDown, 1, 0, false, false},
		{RoundDown, 9, 9, true, false},

		{RoundCeil, 1, 0, false, true},
		{RoundCeil, 9, 0, true, false},

		{RoundFloor, 1, 0, false, false},
		{RoundFloor, 1, 0, true, true},

		{RoundHalfUp, 4, 0, false, false},
		{RoundHalfUp, 5, 0, false, true},
		{RoundHalfUp, 5, 1, true, true},
		{RoundHalfUp, 9, 0, false, true},

		{RoundHalfDown, 4, 0, false, false},
		{RoundHalfDown, 5, 1, false, false},
		{RoundHalfDown, 6, 0, true, true},

		{RoundHalfEven, 4, 1, false, false},
		{RoundHalfEven, 5, 1, false, true},
		{RoundHalfEven, 5, 2, false, false},
		{RoundHalfEven, 5, 3, true, true},
		{RoundHalfEven, 6, 2, false, true},

		{RoundHalfOdd, 4, 2, false, false},
		{RoundHalfOdd, 5, 1, false, false},
		{RoundHalfOdd, 5, 2, false, true},
		{RoundHalfOdd, 5, 0, true, true},
		{RoundHalfOdd, 6, 1, false, true},

		{RoundHalfCeil, 4, 0, false, false},
		{RoundHalfCeil, 5, 0, false, true},
		{RoundHalfCeil, 5, 0, true, true},
		{RoundHalfCeil, 6, 0, true, true},

		{RoundHalfFloor, 4, 0, true, false},
		{RoundHalfFloor, 5, 0, false, false},
		{RoundHalfFloor, 5, 0, true, true},
		{RoundHalfFloor, 6, 0, false, true},
	}
	for _, tt := range tests {
		got, err := tt.mode.increment(tt.guard, tt.last, tt.neg)
		if err != nil {
			t.Errorf("%v.increment(%v, %v, %v) failed: %v", tt.mode, tt.guard, tt.last, tt.neg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v.increment(%v, %v, %v) = %v, want %v", tt.mode, tt.guard, tt.last, tt.neg, got, tt.want)
		}
	}

	t.Run("error", func(t *testing.T) {
		_, err := RoundingMode(10).increment(5, 0, false)
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("RoundingMode(10).increment(5, 0, false) returned %v, want %v", err, ErrInvalidRoundingMode)
		}
	})
}

func TestFraction_Fixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f     string
			scale int
			mode  RoundingMode
			want  string
		}{
			// Guard digit
			{"1/8", 2, RoundHalfUp, "0.13"},
			{"1/8", 2, RoundHalfDown, "0.12"},
			{"1/8", 2, RoundHalfEven, "0.12"},
			{"1/8", 2, RoundHalfOdd, "0.13"},
			{"1/3", 4, RoundDown, "0.3333"},
			{"1/3", 2, RoundUp, "0.34"},
			{"1/3", 2, RoundCeil, "0.34"},
			{"1/3", 2, RoundFloor, "0.33"},
			{"-1/3", 2, RoundUp, "-0.34"},
			{"-1/3", 2, RoundCeil, "-0.33"},
			{"-1/3", 2, RoundFloor, "-0.34"},
			{"-2/3", 2, RoundDown, "-0.66"},
			{"-1/8", 2, RoundHalfUp, "-0.13"},
			{"5/2", 0, RoundHalfUp, "3"},
			{"5/2", 0, RoundHalfEven, "2"},
			{"7/2", 0, RoundHalfEven, "4"},
			{"5/2", 0, RoundHalfOdd, "3"},
			{"7/2", 0, RoundHalfOdd, "3"},
			{"5/2", 0, RoundHalfCeil, "3"},
			{"-5/2", 0, RoundHalfCeil, "-3"},
			{"5/2", 0, RoundHalfFloor, "2"},
			{"-5/2", 0, RoundHalfFloor, "-3"},
			{"-5/2", 0, RoundHalfDown, "-2"},
			{"-2/3", 0, RoundHalfUp, "-1"},

			// Exact values
			{"0", 0, RoundHalfUp, "0"},
			{"0", 2, RoundUp, "0.00"},
			{"1/4", 2, RoundUp, "0.25"},
			{"1/4", 2, RoundDown, "0.25"},
			{"1/4", 4, RoundHalfUp, "0.2500"},
			{"3", 2, RoundHalfUp, "3.00"},
			{"-3", 0, RoundHalfUp, "-3"},
			{"12 1/2", 1, RoundHalfUp, "12.5"},

			// Signs of values rounded to zero
			{"-1/3", 0, RoundDown, "0"},
			{"-1/1000", 0, RoundHalfUp, "0"},
			{"-1/1000", 2, RoundHalfUp, "-0.00"},

			// Carry
			{"999/1000", 2, RoundHalfUp, "1.00"},
			{"999/100", 1, RoundHalfUp, "10.0"},
			{"19/2", 0, RoundHalfUp, "10"},
			{"-19/2", 0, RoundHalfUp, "-10"},
			{"99999/100000", 4, RoundHalfUp, "1.0000"},
			{"1099/1000", 2, RoundUp, "1.10"},
			{"9999999999999999999999 99/100", 1, RoundHalfUp, "10000000000000000000000.0"},

			// Large values and scales
			{"1/3", 25, RoundDown, "0." + strings.Repeat("3", 25)},
			{"2/3", 25, RoundHalfUp, "0." + strings.Repeat("6", 24) + "7"},
			{"123456789012345678901234567890 1/2", 0, RoundHalfEven, "123456789012345678901234567890"},
			{"123456789012345678901234567891 1/2", 0, RoundHalfEven, "123456789012345678901234567892"},
			{"1/100000000000000000000", 20, RoundHalfUp, "0.00000000000000000001"},
			{"1/100000000000000000000", 19, RoundHalfUp, "0.0000000000000000000"},
			{"1/100000000000000000000", 19, RoundUp, "0.0000000000000000001"},
		}
		for _, tt := range tests {
			f := MustParse(tt.f)
			got, err := f.Fixed(tt.scale, tt.mode)
			if err != nil {
				t.Errorf("%q.Fixed(%v, %v) failed: %v", f, tt.scale, tt.mode, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Fixed(%v, %v) = %q, want %q", f, tt.scale, tt.mode, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			f     string
			scale int
			mode  RoundingMode
			want  error
		}{
			{"1/8", -1, RoundHalfUp, ErrInvalidArgument},
			{"1/8", 2, RoundingMode(10), ErrInvalidRoundingMode},
			{"1/8", 2, RoundingMode(255), ErrInvalidRoundingMode},
			{"0", 0, RoundingMode(10), ErrInvalidRoundingMode},
		}
		for _, tt := range tests {
			f := MustParse(tt.f)
			_, err := f.Fixed(tt.scale, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("%q.Fixed(%v, %v) returned %v, want %v", f, tt.scale, tt.mode, err, tt.want)
			}
		}
	})
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"half_up", RoundHalfUp},
			{"HALF_UP", RoundHalfUp},
			{"ROUND_HALF_UP", RoundHalfUp},
			{"half-up", RoundHalfUp},
			{"round-half-up", RoundHalfUp},
			{"up", RoundUp},
			{"ROUND_UP", RoundUp},
			{"down", RoundDown},
			{"ceil", RoundCeil},
			{"floor", RoundFloor},
			{"half_down", RoundHalfDown},
			{"half_even", RoundHalfEven},
			{"Half_Even", RoundHalfEven},
			{"half_odd", RoundHalfOdd},
			{"half_ceil", RoundHalfCeil},
			{"ROUND_HALF_FLOOR", RoundHalfFloor},
			{" half_even ", RoundHalfEven},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "half", "round", "round_", "nearest", "halfeven", "0", "ROUND ROUND_UP",
		}
		for _, tt := range tests {
			_, err := ParseRoundingMode(tt)
			if !errors.Is(err, ErrInvalidRoundingMode) {
				t.Errorf("ParseRoundingMode(%q) returned %v, want %v", tt, err, ErrInvalidRoundingMode)
			}
		}
	})
}

func TestMustParseRoundingMode(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseRoundingMode(\"nearest\") did not panic")
			}
		}()
		MustParseRoundingMode("nearest")
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{RoundHalfUp, "half_up"},
		{RoundUp, "up"},
		{RoundDown, "down"},
		{RoundCeil, "ceil"},
		{RoundFloor, "floor"},
		{RoundHalfDown, "half_down"},
		{RoundHalfEven, "half_even"},
		{RoundHalfOdd, "half_odd"},
		{RoundHalfCeil, "half_ceil"},
		{RoundHalfFloor, "half_floor"},
		{RoundingMode(10), "RoundingMode(10)"},
		{RoundingMode(42), "RoundingMode(42)"},
	}
	for _, tt := range tests {
		got := tt.mode.String()
		if got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.mode), got, tt.want)
		}
	}
}

func TestRoundingMode_IsValid(t *testing.T) {
	for m := RoundHalfUp; m <= RoundHalfFloor; m++ {
		if !m.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", m)
		}
		got, err := ParseRoundingMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseRoundingMode(%q) = (%v, %v), want %v", m.String(), got, err, m)
		}
	}
	for _, m := range []RoundingMode{10, 11, 255} {
		if m.IsValid() {
			t.Errorf("%v.IsValid() = true, want false", m)
		}
	}
}

func TestRoundingMode_MarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := RoundHalfEven.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() failed: %v", err)
		}
		if string(got) != "half_even" {
			t.Errorf("MarshalText() = %q, want \"half_even\"", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := RoundingMode(10).MarshalText()
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("RoundingMode(10).MarshalText() returned %v, want %v", err, ErrInvalidRoundingMode)
		}
	})
}

func TestRoundingMode_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got RoundingMode
		err := got.UnmarshalText([]byte("ROUND_HALF_ODD"))
		if err != nil {
			t.Fatalf("UnmarshalText() failed: %v", err)
		}
		if got != RoundHalfOdd {
			t.Errorf("UnmarshalText() = %v, want %v", got, RoundHalfOdd)
		}
	})

	t.Run("error", func(t *testing.T) {
		var got RoundingMode
		err := got.UnmarshalText([]byte("nearest"))
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("UnmarshalText(\"nearest\") returned %v, want %v", err, ErrInvalidRoundingMode)
		}
	})
}
