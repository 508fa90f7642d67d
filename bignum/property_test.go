package bignum

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func defaultPropertyParams() *gopter.TestParameters {
	p := gopter.DefaultTestParameters()
	p.MinSuccessfulTests = 200
	return p
}

// TestAlgebraicProperties exercises the closure, commutativity,
// associativity, identity, inverse and sign laws the arithmetic core is
// expected to satisfy for every operand, not just the hand-picked unit
// test cases.
func TestAlgebraicProperties(t *testing.T) {
	properties := gopter.NewProperties(defaultPropertyParams())

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := FromInt64(a), FromInt64(b)
			return x.Add(y).Equal(y.Add(x))
		}, gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b int64) bool {
			x, y := FromInt64(a), FromInt64(b)
			return x.Mul(y).Equal(y.Mul(x))
		}, gen.Int64(), gen.Int64(),
	))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := FromInt64(a), FromInt64(b), FromInt64(c)
			return x.Add(y).Add(z).Equal(x.Add(y.Add(z)))
		}, gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c int32) bool {
			x, y, z := FromInt64(int64(a)), FromInt64(int64(b)), FromInt64(int64(c))
			return x.Mul(y).Mul(z).Equal(x.Mul(y.Mul(z)))
		}, gen.Int32(), gen.Int32(), gen.Int32(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c int32) bool {
			x, y, z := FromInt64(int64(a)), FromInt64(int64(b)), FromInt64(int64(c))
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		}, gen.Int32(), gen.Int32(), gen.Int32(),
	))

	properties.Property("zero is the additive identity", prop.ForAll(
		func(a int64) bool {
			x := FromInt64(a)
			return x.Add(Zero).Equal(x)
		}, gen.Int64(),
	))

	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(a int64) bool {
			x := FromInt64(a)
			return x.Mul(One).Equal(x)
		}, gen.Int64(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a int64) bool {
			x := FromInt64(a)
			return x.Add(x.Neg()).IsZero()
		}, gen.Int64(),
	))

	properties.Property("a - b == a + (-b)", prop.ForAll(
		func(a, b int64) bool {
			x, y := FromInt64(a), FromInt64(b)
			return x.Sub(y).Equal(x.Add(y.Neg()))
		}, gen.Int64(), gen.Int64(),
	))

	properties.Property("Square equals Mul with itself", prop.ForAll(
		func(a int64) bool {
			x := FromInt64(a)
			return x.Square().Equal(x.Mul(x))
		}, gen.Int64(),
	))

	properties.Property("a*a is never negative", prop.ForAll(
		func(a int64) bool {
			return FromInt64(a).Square().Sign() >= 0
		}, gen.Int64(),
	))

	properties.Property("division satisfies a == q*b + r", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			x, y := FromInt64(a), FromInt64(b)
			q, r, err := x.DivRem(y)
			return err == nil && q.Mul(y).Add(r).Equal(x)
		}, gen.Int64(), gen.Int64(),
	))

	properties.Property("GCD divides both operands", prop.ForAll(
		func(a, b int64) bool {
			x, y := FromInt64(a), FromInt64(b)
			g := x.GCD(y)
			if g.IsZero() {
				return x.IsZero() && y.IsZero()
			}
			_, ra, _ := x.DivRem(g)
			_, rb, _ := y.DivRem(g)
			return ra.IsZero() && rb.IsZero()
		}, gen.Int64(), gen.Int64(),
	))

	properties.Property("Lsh then Rsh by the same amount recovers the original for non-negative values", prop.ForAll(
		func(a int64, n uint8) bool {
			if a < 0 {
				a = -a
			}
			x := FromInt64(a)
			shift := uint(n % 64)
			return x.Lsh(shift).Rsh(shift).Equal(x)
		}, gen.Int64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}
