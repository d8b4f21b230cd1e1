// Package verhoeff implements the Verhoeff checksum over decimal digit
// strings, as used by 12-digit Aadhaar numbers. The check is built on the
// dihedral group D5, which detects all single-digit errors and most adjacent
// transpositions, unlike simpler mod-10 schemes.
//
// The package is pure: constant tables, no state, safe for concurrent use.
package verhoeff

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// AadhaarLength is the full length of an Aadhaar number, check digit included.
const AadhaarLength = 12

// ErrInvalidFormat reports input that, after stripping whitespace, is not the
// required number of decimal digits. Wrapped errors carry the detail.
var ErrInvalidFormat = errors.New("invalid format")

// d is the multiplication (Cayley) table of the dihedral group D5.
// d[a][b] composes two group elements; the operation is not commutative,
// which is what gives the check its transposition detection.
var d = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// p applies a position-dependent permutation before each digit enters the
// fold. Row index is the digit's position from the right, mod 8.
var p = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// inv maps a checksum value to the digit that cancels it: d[c][inv[c]] == 0.
var inv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// fold runs the accumulation pass right-to-left over digits. shift offsets
// the position index; generation uses shift=1 because every prefix digit
// moves one place left once the check digit is appended.
func fold(digits []int, shift int) int {
	c := 0
	for i := 0; i < len(digits); i++ {
		digit := digits[len(digits)-1-i]
		c = d[c][p[(i+shift)%8][digit]]
	}
	return c
}

// Checksum folds a digit sequence with the rightmost digit at position 0 and
// returns the running checksum. A sequence is self-checking when the result
// is 0. Checksum of an empty slice is 0. Every element must be in [0,9];
// out-of-range values are a caller bug and index out of bounds.
func Checksum(digits []int) int {
	return fold(digits, 0)
}

// Validate reports whether raw is a checksum-valid 12-digit Aadhaar number.
// Whitespace anywhere in the input is ignored. Any other non-digit character,
// or a cleaned length other than 12, makes the number invalid; Validate never
// returns an error because malformed input is simply not a valid number.
func Validate(raw string) bool {
	digits, err := parseDigits(raw, AadhaarLength)
	if err != nil {
		return false
	}
	return fold(digits, 0) == 0
}

// GenerateCheckDigit computes the check digit for an 11-digit prefix. The
// returned digit appended to the prefix always yields a Validate-true number.
// Fails with ErrInvalidFormat unless the cleaned prefix is exactly 11 digits.
func GenerateCheckDigit(rawPrefix string) (int, error) {
	digits, err := parseDigits(rawPrefix, AadhaarLength-1)
	if err != nil {
		return 0, err
	}
	return inv[fold(digits, 1)], nil
}

// Complete appends the computed check digit to the cleaned 11-digit prefix
// and returns the full 12-digit number.
func Complete(rawPrefix string) (string, error) {
	check, err := GenerateCheckDigit(rawPrefix)
	if err != nil {
		return "", err
	}
	return stripSpace(rawPrefix) + string(rune('0'+check)), nil
}

// parseDigits strips whitespace and converts raw into exactly want digits.
// Non-digit, non-space characters reject the input rather than being dropped,
// so "12a4..." is malformed instead of silently shortened.
func parseDigits(raw string, want int) ([]int, error) {
	cleaned := stripSpace(raw)
	if len(cleaned) != want {
		return nil, fmt.Errorf("%w: need %d digits, got %d", ErrInvalidFormat, want, len(cleaned))
	}
	digits := make([]int, want)
	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: non-digit character %q", ErrInvalidFormat, r)
		}
		digits[i] = int(r - '0')
	}
	return digits, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
