package verhoeff

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_EmptySequence(t *testing.T) {
	assert.Equal(t, 0, Checksum(nil))
	assert.Equal(t, 0, Checksum([]int{}))
}

func TestChecksum_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		digits []int
		want   int
	}{
		{"valid number folds to zero", []int{2, 4, 0, 5, 3, 7, 8, 0, 2, 8, 9, 4}, 0},
		{"corrupt check digit folds nonzero", []int{2, 4, 0, 5, 3, 7, 8, 0, 2, 8, 9, 2}, 3},
		{"sequential digits", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2}, 2},
		{"all nines is self-checking", []int{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}, 0},
		{"single zero", []int{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.digits))
		})
	}
}

func TestValidate_GoldenNumbers(t *testing.T) {
	valid := []string{
		"240537802894",
		"999999999999",
		"123123123123",
		"989898989895",
		"555555555551",
		"000000000003",
		"987654321096",
	}
	for _, number := range valid {
		assert.True(t, Validate(number), "expected %s to validate", number)
	}

	invalid := []string{
		"240537802892",
		"123456789012",
		"123123123124",
		"000000000000",
	}
	for _, number := range invalid {
		assert.False(t, Validate(number), "expected %s to fail the checksum", number)
	}
}

func TestValidate_WhitespaceInvariance(t *testing.T) {
	assert.Equal(t, Validate("123456789012"), Validate("1234 5678 9012"))
	assert.True(t, Validate("2405 3780 2894"))
	assert.True(t, Validate("  240537802894\t"))
	assert.True(t, Validate("2 4 0 5 3 7 8 0 2 8 9 4"))
}

func TestValidate_MalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"eleven digits", "24053780289"},
		{"thirteen digits", "2405378028941"},
		{"letters", "2405378O2894"},
		{"letters only", "notanumber!!"},
		{"hyphen separators", "2405-3780-2894"},
		{"digit with trailing letter", "24053780289a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Validate(tt.input))
		})
	}
}

func TestGenerateCheckDigit_GoldenPrefixes(t *testing.T) {
	tests := []struct {
		prefix string
		want   int
	}{
		{"24053780289", 4},
		{"99999999999", 9},
		{"00000000000", 3},
		{"12345678901", 0},
		{"98765432109", 6},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := GenerateCheckDigit(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCheckDigit_InvalidFormat(t *testing.T) {
	inputs := []string{"", "1234567890", "123456789012", "1234567890a", "abcdefghijk"}
	for _, input := range inputs {
		_, err := GenerateCheckDigit(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}
}

func TestGenerateCheckDigit_AcceptsWhitespace(t *testing.T) {
	got, err := GenerateCheckDigit("2405 3780 289")
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

// The round trip generate-then-validate must hold for every prefix. Exhaustive
// coverage of 10^11 prefixes is out of reach, so sample edge digits in every
// position plus a broad random draw.
func TestGenerateValidateRoundTrip(t *testing.T) {
	check := func(t *testing.T, prefix string) {
		t.Helper()
		digit, err := GenerateCheckDigit(prefix)
		require.NoError(t, err)
		assert.True(t, Validate(prefix+strconv.Itoa(digit)),
			"prefix %s with check digit %d did not validate", prefix, digit)
	}

	t.Run("edge digits in every position", func(t *testing.T) {
		for pos := 0; pos < 11; pos++ {
			for _, edge := range []byte{'0', '9'} {
				prefix := []byte("52601815908")
				prefix[pos] = edge
				check(t, string(prefix))
			}
		}
	})

	t.Run("uniform prefixes", func(t *testing.T) {
		for digit := 0; digit <= 9; digit++ {
			check(t, strings.Repeat(strconv.Itoa(digit), 11))
		}
	})

	t.Run("random sample", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 5000; i++ {
			check(t, randomDigits(rng, 11))
		}
	})
}

func TestComplete(t *testing.T) {
	full, err := Complete("24053780289")
	require.NoError(t, err)
	assert.Equal(t, "240537802894", full)
	assert.True(t, Validate(full))

	full, err = Complete("2405 3780 289")
	require.NoError(t, err)
	assert.Equal(t, "240537802894", full)

	_, err = Complete("123")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

// The dihedral construction detects every single-digit substitution, so
// assert exactly that across sampled valid numbers.
func TestSingleDigitErrorDetection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for sample := 0; sample < 200; sample++ {
		prefix := randomDigits(rng, 11)
		digit, err := GenerateCheckDigit(prefix)
		require.NoError(t, err)
		valid := prefix + strconv.Itoa(digit)

		for pos := 0; pos < len(valid); pos++ {
			for sub := byte('0'); sub <= '9'; sub++ {
				if sub == valid[pos] {
					continue
				}
				corrupted := valid[:pos] + string(sub) + valid[pos+1:]
				assert.False(t, Validate(corrupted),
					"corruption of %s at position %d to %c went undetected", valid, pos, sub)
			}
		}
	}
}

func TestAdjacentTranspositionDetection(t *testing.T) {
	// Transpositions of distinct adjacent digits are all caught as well.
	valid := "240537802894"
	for pos := 0; pos < len(valid)-1; pos++ {
		if valid[pos] == valid[pos+1] {
			continue
		}
		swapped := []byte(valid)
		swapped[pos], swapped[pos+1] = swapped[pos+1], swapped[pos]
		assert.False(t, Validate(string(swapped)),
			"transposition at position %d went undetected", pos)
	}
}

func randomDigits(rng *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%d", rng.Intn(10))
	}
	return sb.String()
}

func BenchmarkValidate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Validate("240537802894")
	}
}
