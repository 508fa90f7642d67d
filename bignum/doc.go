// Package bignum implements an arbitrary-precision signed integer, BigInt,
// and its magnitude arithmetic kernel: addition, subtraction, multiplication
// (schoolbook and Karatsuba), squaring, division (Knuth Algorithm D), GCD,
// modular exponentiation, shifts, bitwise operations on two's-complement
// views, and two's-complement byte import/export.
//
// A BigInt is immutable once constructed. Every operation takes its operands
// by value and returns a new, independently-owned BigInt; none of the
// operands are mutated. This makes BigInt safe to share across goroutines
// without synchronization, since nothing ever writes to a value after it
// escapes its constructor.
//
// Internally, small values (anything that fits in the open interval
// (math.MinInt32, math.MaxInt32]) are stored inline in a 32-bit field with no
// backing slice at all; everything else allocates a little-endian slice of
// 32-bit limbs. This dual representation keeps the common case (loop
// counters, small offsets, the early iterations of a Fibonacci-style
// doubling recurrence) allocation-free while still supporting magnitudes of
// arbitrary size.
package bignum
