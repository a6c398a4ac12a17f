package icbrt

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/holiman/uint256"
)

func TestCbrt256(t *testing.T) {
	tests := []struct {
		name string
		in   uint64
		want uint64
	}{
		{"cbrt(0) = 0", 0, 0},
		{"cbrt(1) = 1", 1, 1},
		{"cbrt(8) = 2", 8, 2},
		{"cbrt(63) = 3", 63, 3},
		{"cbrt(64) = 4", 64, 4},
		{"cbrt(511) = 7", 511, 7},
		{"cbrt(10^15) = 10^5", 1_000_000_000_000_000, 100_000},
		{"cbrt(MaxUint64)", 1<<64 - 1, 2_642_245},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cbrt256(uint256.NewInt(tt.in))
			if !got.IsUint64() || got.Uint64() != tt.want {
				t.Errorf("Cbrt256(%d) = %v, want %d", tt.in, got.ToBig(), tt.want)
			}
		})
	}
}

func TestCbrt256_Max(t *testing.T) {
	v := new(uint256.Int).SetAllOne()
	got := Cbrt256(v)
	want := bigCbrt(v.ToBig())
	if got.ToBig().Cmp(want) != 0 {
		t.Errorf("Cbrt256(max) = %v, want %v", got.ToBig(), want)
	}
	if !v.Eq(new(uint256.Int).SetAllOne()) {
		t.Errorf("Cbrt256 modified its argument: %v", v.ToBig())
	}
}

func TestCbrt256_Random(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 19))
	for range 500 {
		v := &uint256.Int{rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()}
		v.Rsh(v, rng.UintN(256))

		got := Cbrt256(v).ToBig()
		if want := bigCbrt(v.ToBig()); got.Cmp(want) != 0 {
			t.Fatalf("Cbrt256(%v) = %v, want %v", v.ToBig(), got, want)
		}
	}

	// Perfect cubes and their predecessors.
	for k := int64(1); k < 1<<40; k = k*3 + 1 {
		bk := big.NewInt(k)
		c, overflow := uint256.FromBig(bigCube(bk))
		if overflow {
			t.Fatalf("cube of %d overflows", k)
		}
		if got := Cbrt256(c).ToBig(); got.Cmp(bk) != 0 {
			t.Fatalf("Cbrt256(%d^3) = %v", k, got)
		}
		c.SubUint64(c, 1)
		if got := Cbrt256(c).ToBig(); got.Cmp(new(big.Int).Sub(bk, big.NewInt(1))) != 0 {
			t.Fatalf("Cbrt256(%d^3-1) = %v", k, got)
		}
	}
}
