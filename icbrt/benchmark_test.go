package icbrt

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"
)

var (
	sinkU64  uint64
	sinkU128 num.U128
	sinkU256 *uint256.Int
)

func BenchmarkCbrtUint64(b *testing.B) {
	inputs := []struct {
		name string
		v    uint64
	}{
		{"Small", 511},
		{"Medium", 1_000_000_000_000_000},
		{"Large", math.MaxUint64},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			v := in.v
			for i := 0; i < b.N; i++ {
				sinkU64 = Cbrt(v)
			}
		})
	}
}

func BenchmarkCbrt128(b *testing.B) {
	inputs := []struct {
		name string
		v    num.U128
	}{
		{"Small", num.U128From64(511)},
		{"Medium", num.U128From64(1_000_000_000_000_000)},
		{"Large", num.U128FromRaw(math.MaxUint64, math.MaxUint64)},
	}
	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			v := in.v
			for i := 0; i < b.N; i++ {
				sinkU128 = Cbrt128(v)
			}
		})
	}
}

func BenchmarkCbrt256(b *testing.B) {
	v := new(uint256.Int).SetAllOne()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkU256 = Cbrt256(v)
	}
}

func BenchmarkCbrtWidths(b *testing.B) {
	b.Run("Uint8", func(b *testing.B) {
		var s uint8
		for i := 0; i < b.N; i++ {
			s += Cbrt(uint8(i))
		}
		sinkU64 = uint64(s)
	})
	b.Run("Int16", func(b *testing.B) {
		var s int16
		for i := 0; i < b.N; i++ {
			s += Cbrt(int16(i & math.MaxInt16))
		}
		sinkU64 = uint64(s)
	})
	b.Run("Uint32", func(b *testing.B) {
		var s uint32
		for i := 0; i < b.N; i++ {
			s += Cbrt(uint32(i))
		}
		sinkU64 = uint64(s)
	})
	b.Run("Int64", func(b *testing.B) {
		var s int64
		for i := 0; i < b.N; i++ {
			s += Cbrt(int64(i))
		}
		sinkU64 = uint64(s)
	})
}
