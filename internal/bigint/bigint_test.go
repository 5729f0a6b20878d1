package bigint

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

func limbsToBig(limbs []uint64) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

func randomU256(r *rand.Rand) U256 {
	return U256{Limbs: [4]uint64{r.Uint64(), r.Uint64(), r.Uint64(), r.Uint64()}}
}

func maxU256() U256 {
	return U256{Limbs: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
}

func TestU256_Bytes(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = byte(i + 1)
	}
	u := U256FromBytes(b)
	require.Equal(t, uint64(0x0807060504030201), u.Limbs[0])
	require.Equal(t, uint64(0x201f1e1d1c1b1a19), u.Limbs[3])
	require.Equal(t, b, u.Bytes())
}

func TestU256_Add(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b := randomU256(r), randomU256(r)
		expected := new(big.Int).Add(limbsToBig(a.Limbs[:]), limbsToBig(b.Limbs[:]))
		carry := expected.Cmp(two256) >= 0
		expected.Mod(expected, two256)

		sum := a
		c := sum.AddAssign(b)
		requireBig(t, expected, limbsToBig(sum.Limbs[:]))
		require.Equal(t, carry, c == 1)
		require.Equal(t, sum.Limbs, a.Add(b).Limbs)
	}
}

func TestU256_AddWraps(t *testing.T) {
	sum := maxU256().Add(NewU256(1))
	require.Equal(t, [4]uint64{}, sum.Limbs)
}

func TestU256_SubWithBorrow(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		a, b := randomU256(r), randomU256(r)
		ab, bb := limbsToBig(a.Limbs[:]), limbsToBig(b.Limbs[:])
		expected := new(big.Int).Sub(ab, bb)
		expected.Mod(expected, two256)

		diff := a
		borrow := diff.SubWithBorrow(b)
		requireBig(t, expected, limbsToBig(diff.Limbs[:]))
		if ab.Cmp(bb) >= 0 {
			require.Equal(t, uint64(0), borrow)
		} else {
			require.Equal(t, uint64(1), borrow)
		}
		require.Equal(t, diff.Limbs, a.Sub(b).Limbs)
	}
}

func TestU256_SubWithBorrowEdges(t *testing.T) {
	zero := NewU256(0)
	require.Equal(t, uint64(1), zero.SubWithBorrow(NewU256(1)))
	require.Equal(t, maxU256().Limbs, zero.Limbs)

	x := NewU256(7)
	require.Equal(t, uint64(0), x.SubWithBorrow(NewU256(7)))
	require.Equal(t, [4]uint64{}, x.Limbs)
}

func TestU256_Mul(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	cases := [][2]U256{
		{maxU256(), maxU256()},
		{maxU256(), NewU256(0)},
		{NewU256(1), maxU256()},
	}
	for i := 0; i < 1000; i++ {
		cases = append(cases, [2]U256{randomU256(r), randomU256(r)})
	}

	for _, c := range cases {
		expected := new(big.Int).Mul(limbsToBig(c[0].Limbs[:]), limbsToBig(c[1].Limbs[:]))
		prod := c[0].Mul(c[1])
		requireBig(t, expected, limbsToBig(prod.Limbs[:]))
		require.Equal(t, prod.Limbs, c[1].Mul(c[0]).Limbs)
	}
}

func TestU512_MulU256(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		a := randomU256(r).Mul(randomU256(r))
		if i == 0 {
			a = U512{}
			for j := range a.Limbs {
				a.Limbs[j] = ^uint64(0)
			}
		}
		b := randomU256(r)

		expected := new(big.Int).Mul(limbsToBig(a.Limbs[:]), limbsToBig(b.Limbs[:]))
		hi, lo := a.MulU256(b)
		all := append(append([]uint64{}, lo.Limbs[:]...), hi.Limbs[:]...)
		requireBig(t, expected, limbsToBig(all))
	}
}

func TestU512_LoHi(t *testing.T) {
	var b [64]byte
	for i := range b {
		b[i] = byte(255 - i)
	}
	u := U512FromBytes(b)

	var lo, hi [32]byte
	copy(lo[:], b[:32])
	copy(hi[:], b[32:])
	require.Equal(t, lo, u.Lo().Bytes())
	require.Equal(t, hi, u.Hi().Bytes())

	w := WidenU256(u.Lo())
	require.Equal(t, u.Lo().Limbs, w.Lo().Limbs)
	require.Equal(t, [4]uint64{}, w.Hi().Limbs)
}

func TestSelect(t *testing.T) {
	a, b := NewU256(1), maxU256()
	require.Equal(t, a.Limbs, Select(a, b, 0).Limbs)
	require.Equal(t, b.Limbs, Select(a, b, 1).Limbs)

	u := a
	u.ConditionalAssign(b, 0)
	require.Equal(t, a.Limbs, u.Limbs)
	u.ConditionalAssign(b, 1)
	require.Equal(t, b.Limbs, u.Limbs)
}

func requireBig(t *testing.T, expected, actual *big.Int) {
	t.Helper()
	require.Equal(t, expected.String(), actual.String())
}
