// Package arith holds the integer exercises: palindrome detection, digit
// reversal with 32-bit overflow guarding and recursive Fibonacci.
package arith

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is reported when reversing the digits leaves the int32 range.
var ErrOverflow = errors.New("reversed value overflows int32")

// MaxFibonacciInput is the largest n whose Fibonacci number fits an int64.
// It bounds the result, not the running time: Fibonacci is exponential and
// already impractical well below this value.
const MaxFibonacciInput = 92

// IsPalindrome reports whether the decimal digits of x read the same in both
// directions. Negative numbers are never palindromes.
func IsPalindrome[T constraints.Integer](x T) bool {
	if x < 0 {
		return false
	}
	if x == 0 {
		return true
	}

	digits := make([]T, 0, 20)
	for ; x != 0; x /= 10 {
		digits = append(digits, x%10)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		if digits[i] != digits[j] {
			return false
		}
	}
	return true
}

// ReverseChecked reverses the decimal digits of x, keeping its sign.
// Trailing zeros of x are dropped, so ReverseChecked(120) is 21.
func ReverseChecked(x int32) (int32, error) {
	var reversed int32
	for x != 0 {
		digit := x % 10
		if reversed > math.MaxInt32/10 || reversed < math.MinInt32/10 {
			return 0, ErrOverflow
		}
		reversed = reversed*10 + digit
		x /= 10
	}
	return reversed, nil
}

// Reverse is ReverseChecked with overflow reported as 0.
func Reverse(x int32) int32 {
	r, err := ReverseChecked(x)
	if err != nil {
		return 0
	}
	return r
}

// Fibonacci computes fib(n) by plain double recursion, fib(n) = n for n <= 1.
// It runs in exponential time.
func Fibonacci[T constraints.Integer](n T) T {
	if n <= 1 {
		return n
	}
	return Fibonacci(n-1) + Fibonacci(n-2)
}
