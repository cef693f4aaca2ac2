package fixed

import "testing"

func TestArithmeticLiterals(t *testing.T) {
	cases := []struct {
		name string
		got  Real
		want Real
	}{
		{"1+1=2", FromInt(1).Add(FromInt(1)), FromInt(2)},
		{"-3.5+1=-2.5", FromFloat64(-3.5).Add(FromInt(1)), FromFloat64(-2.5)},
		{"5-7=-2", FromInt(5).Sub(FromInt(7)), FromInt(-2)},
		{"5*4=20", FromInt(5).Mul(FromInt(4)), FromInt(20)},
		{"10.5*2=21", FromFloat64(10.5).Mul(FromInt(2)), FromInt(21)},
		{"0.5*-1=-0.5", FromFloat64(0.5).Mul(FromFloat64(-1.0)), FromFloat64(-0.5)},
		{"1000/25=40", FromInt(1000).Div(FromInt(25)), FromInt(40)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %v (%d), want %v (%d)", c.got, c.got.Raw(), c.want, c.want.Raw())
			}
		})
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		name string
		got  Real
		want int
	}{
		{"floor(1.5)=1", FromFloat64(1.5).Floor(), 1},
		{"floor(-1.5)=-2", FromFloat64(-1.5).Floor(), -2},
		{"ceil(1.5)=2", FromFloat64(1.5).Ceil(), 2},
		{"ceil(-1.5)=-1", FromFloat64(-1.5).Ceil(), -1},
		{"trunc(1.5)=1", FromFloat64(1.5).Trunc(), 1},
		{"trunc(-1.5)=-1", FromFloat64(-1.5).Trunc(), -1},
		{"round(1.5)=2", FromFloat64(1.5).Round(), 2},
		{"round(1.4)=1", FromFloat64(1.4).Round(), 1},
		{"round(-1.5)=-2", FromFloat64(-1.5).Round(), -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got.Int() != c.want {
				t.Fatalf("got %d, want %d", c.got.Int(), c.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{-524288, -1, 0, 1, 524287} {
		got := FromInt(n).Int()
		if got != n {
			t.Fatalf("round trip %d != %d", got, n)
		}
	}
}

func TestAddSubIdentity(t *testing.T) {
	a := FromFloat64(123.456)
	b := FromFloat64(-77.125)
	if a.Add(b).Sub(b) != a {
		t.Fatalf("a+b-b != a")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 123.25, -456.75} {
		r := FromFloat64(f)
		if diff := r.Float64() - f; diff > 1.0/4096 || diff < -1.0/4096 {
			t.Fatalf("from_f64(%v).as_f64() = %v, not within 1/4096", f, r.Float64())
		}
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		n    int
		want float64
	}{
		{4, 2},
		{100, 10},
	}
	for _, c := range cases {
		got := FromInt(c.n).Sqrt().Float64()
		if got != c.want {
			t.Fatalf("sqrt(%d) = %v, want %v", c.n, got, c.want)
		}
	}

	got150 := FromInt(150).Sqrt().Float64()
	if diff := got150 - 12.24744871391589; diff > 0.01 || diff < -0.01 {
		t.Fatalf("sqrt(150) = %v, want ~12.247", got150)
	}

	for n := 0; n <= 724; n++ {
		got := FromInt(n * n).Sqrt()
		if got.Int() != n {
			t.Fatalf("sqrt(%d*%d) = %v, want %d", n, n, got, n)
		}
	}
}

func TestSqrtNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative sqrt")
		}
	}()
	FromInt(-1).Sqrt()
}

func TestDegreesRadians(t *testing.T) {
	if Pi.ToDegrees() != FromInt(180) {
		t.Fatalf("PI.to_degrees() = %v, want 180", Pi.ToDegrees())
	}
	if FromInt(360).ToRadians() != Tau {
		t.Fatalf("from_i32(360).to_radians() = %v, want TAU", FromInt(360).ToRadians())
	}
}

func TestAtan2(t *testing.T) {
	got := Atan2(One, Zero).Abs()
	want := FracPi2
	if diff := got.Sub(want).Abs().Float64(); diff > 0.01 {
		t.Fatalf("atan2(y,0).abs() = %v, want ~%v", got, want)
	}
}

func TestDivByZeroYieldsZero(t *testing.T) {
	if FromInt(5).Div(Zero) != Zero {
		t.Fatal("division by zero must yield zero, not panic")
	}
}

func TestSignumNeverZero(t *testing.T) {
	if Zero.Signum() != One {
		t.Fatalf("signum(0) must be One, got %v", Zero.Signum())
	}
	if FromInt(-5).Signum() != NegOne {
		t.Fatalf("signum(-5) must be NegOne, got %v", FromInt(-5).Signum())
	}
}
