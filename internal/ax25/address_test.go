package ax25

import "testing"

func TestEncodeAddressShiftsAndPads(t *testing.T) {
	got, err := encodeAddress("CQ", 0, false)
	if err != nil {
		t.Fatalf("encodeAddress error: %v", err)
	}

	want := [7]byte{0x86, 0xA2, 0x40, 0x40, 0x40, 0x40, 0x00}
	if got != want {
		t.Errorf("encodeAddress(\"CQ\", 0, false) = % X, want % X", got, want)
	}
}

func TestEncodeAddressSetsLastBit(t *testing.T) {
	got, err := encodeAddress("N0CALL", 0, true)
	if err != nil {
		t.Fatalf("encodeAddress error: %v", err)
	}

	want := [7]byte{0x9C, 0x60, 0x86, 0x82, 0x98, 0x98, 0x01}
	if got != want {
		t.Errorf("encodeAddress(\"N0CALL\", 0, true) = % X, want % X", got, want)
	}
}

func TestEncodeAddressSSIDPacking(t *testing.T) {
	got, err := encodeAddress("X", 5, true)
	if err != nil {
		t.Fatalf("encodeAddress error: %v", err)
	}
	if got[6] != (5<<1)|1 {
		t.Errorf("SSID byte = %#x, want %#x", got[6], (5<<1)|1)
	}
}

func TestEncodeAddressRejectsOversizedCall(t *testing.T) {
	if _, err := encodeAddress("TOOLONGCALL", 0, false); err != ErrInvalidInput {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}

func TestEncodeAddressRejectsOversizedSSID(t *testing.T) {
	if _, err := encodeAddress("N0CALL", 64, false); err != ErrInvalidInput {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}
}
