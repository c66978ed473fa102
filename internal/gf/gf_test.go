package gf

import "testing"

func TestFieldTablesAreInverse(t *testing.T) {
	f := New()

	for x := 1; x < 256; x++ {
		if got := f.Exp(int(f.Log(uint8(x)))); got != uint8(x) {
			t.Errorf("exp[log[%d]] = %d, want %d", x, got, x)
		}
	}

	for i := 0; i < 255; i++ {
		x := f.Exp(i)
		if got := f.Log(x); int(got) != i {
			t.Errorf("log[exp[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestExpTableWraps(t *testing.T) {
	f := New()
	for i := 0; i < 255; i++ {
		if f.Exp(i+255) != f.Exp(i) {
			t.Errorf("exp[%d] = 0x%02X, want exp[%d] = 0x%02X", i+255, f.Exp(i+255), i, f.Exp(i))
		}
	}
}

func TestMul(t *testing.T) {
	f := New()

	if got := f.Mul(0, 0x12); got != 0 {
		t.Errorf("Mul(0, 0x12) = %d, want 0", got)
	}
	if got := f.Mul(0x34, 0); got != 0 {
		t.Errorf("Mul(0x34, 0) = %d, want 0", got)
	}
	if got := f.Mul(1, 0x56); got != 0x56 {
		t.Errorf("Mul(1, 0x56) = 0x%02X, want 0x56", got)
	}

	for a := 1; a < 256; a++ {
		for _, b := range []uint8{3, 7, 200} {
			if f.Mul(uint8(a), b) != f.Mul(b, uint8(a)) {
				t.Fatalf("Mul not commutative at a=%d b=%d", a, b)
			}
		}
	}
}

func TestDivUndoesMul(t *testing.T) {
	f := New()
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			prod := f.Mul(uint8(a), uint8(b))
			if got := f.Div(prod, uint8(b)); got != uint8(a) {
				t.Fatalf("Div(Mul(%d,%d), %d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestDivByZeroFailsSoft(t *testing.T) {
	f := New()
	if got := f.Div(5, 0); got != 0 {
		t.Errorf("Div(5, 0) = %d, want 0", got)
	}
	if got := f.Div(0, 5); got != 0 {
		t.Errorf("Div(0, 5) = %d, want 0", got)
	}
}

func TestPow(t *testing.T) {
	f := New()

	if got := f.Pow(0, 0); got != 1 {
		t.Errorf("Pow(0,0) = %d, want 1", got)
	}
	if got := f.Pow(0, 5); got != 0 {
		t.Errorf("Pow(0,5) = %d, want 0", got)
	}

	for e := 0; e < 255; e++ {
		if got := f.Pow(Alpha, e); got != f.Exp(e) {
			t.Errorf("Pow(alpha, %d) = 0x%02X, want 0x%02X", e, got, f.Exp(e))
		}
	}
}

func TestInv(t *testing.T) {
	f := New()
	for a := 1; a < 256; a++ {
		if got := f.Mul(uint8(a), f.Inv(uint8(a))); got != 1 {
			t.Errorf("a * inv(a) = %d for a=%d, want 1", got, a)
		}
	}
}
