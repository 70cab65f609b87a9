// Package fib computes terms of the Fibonacci sequence by naive recursion and
// by an iterative accumulator.
package fib

import "math/big"

// MaxExactInt64 is the largest n for which F(n) fits in an int64.
const MaxExactInt64 = 92

// Recursive returns F(n) by direct self-recursion. Every sub-term is
// recomputed, so cost grows as O(2^n). It returns 0 for n <= 0.
func Recursive(n int) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Iterative returns F(n) by advancing two accumulators over [2, n]. It returns
// 0 for n <= 0. Past MaxExactInt64 the result wraps modulo 2^64.
func Iterative(n int) int64 {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	prev, cur := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		prev, cur = cur, prev+cur
	}
	return cur
}

// Big returns the exact value of F(n).
func Big(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(0)
	}

	prev, cur := big.NewInt(0), big.NewInt(1)
	for i := 2; i <= n; i++ {
		prev.Add(prev, cur)
		prev, cur = cur, prev
	}
	return cur
}

// Overflows reports whether F(n) exceeds the int64 range.
func Overflows(n int) bool {
	return n > MaxExactInt64
}
