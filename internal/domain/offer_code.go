package domain

import (
	"math/rand/v2"
	"strings"
)

const (
	OfferCodeLength = 6
	OfferLetters    = "ABCDFGHJKLMNPQRSTUVWXYZ"
	OfferDigits     = "23456789"

	minDigits = 1
	maxDigits = 5
)

// CodeGenerator produces candidate offer codes. Candidates are not known to be unique
// until checked against the datastore.
type CodeGenerator struct {
	rng *rand.Rand
}

func NewCodeGenerator(rng *rand.Rand) *CodeGenerator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &CodeGenerator{rng: rng}
}

// Code builds one code with between 1 and 5 digits, the rest letters, shuffled.
func (g *CodeGenerator) Code() string {
	digits := minDigits + g.rng.IntN(maxDigits-minDigits+1)
	letters := OfferCodeLength - digits

	code := make([]byte, 0, OfferCodeLength)
	for range letters {
		code = append(code, OfferLetters[g.rng.IntN(len(OfferLetters))])
	}
	for range digits {
		code = append(code, OfferDigits[g.rng.IntN(len(OfferDigits))])
	}
	g.rng.Shuffle(len(code), func(i, j int) {
		code[i], code[j] = code[j], code[i]
	})

	return string(code)
}

// Candidates returns n distinct codes, none of which appear in exclude.
func (g *CodeGenerator) Candidates(n int, exclude map[string]struct{}) []string {
	if n <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		code := g.Code()
		if _, dup := seen[code]; dup {
			continue
		}
		if _, taken := exclude[code]; taken {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// IsOfferCode reports whether s has the shape of a generated code.
func IsOfferCode(s string) bool {
	if len(s) != OfferCodeLength {
		return false
	}
	var digits int
	for i := 0; i < len(s); i++ {
		switch {
		case strings.IndexByte(OfferDigits, s[i]) >= 0:
			digits++
		case strings.IndexByte(OfferLetters, s[i]) >= 0:
		default:
			return false
		}
	}
	return digits >= minDigits && digits <= maxDigits
}
