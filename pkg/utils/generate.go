package utils

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Random is the source every randomized generator draws from.
// *rand.Rand from math/rand/v2 satisfies it, which is what tests seed.
type Random interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandom returns the process-wide entropy source. Safe for concurrent use.
func DefaultRandom() Random {
	return globalRandom{}
}

// SeededRandom returns a deterministic source. Not safe for concurrent use.
func SeededRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING REFERENCE ====================

const (
	referencePrefix = "SY"
	referenceWidth  = 8
	referenceSpace  = 2821109907456 // 36^8
)

// BookingReference is the single identifier behind both user-visible booking id formats.
type BookingReference struct {
	value uint64
}

// NewBookingReference draws a reference uniformly from [0, 36^8).
func NewBookingReference(rnd Random) BookingReference {
	return BookingReference{value: uint64(rnd.IntN(referenceSpace))}
}

// ReferenceFromRowID wraps a persisted booking row id.
func ReferenceFromRowID(id int64) BookingReference {
	if id < 0 {
		id = -id
	}
	return BookingReference{value: uint64(id)}
}

// ParseBookingCode reverses Code.
func ParseBookingCode(code string) (BookingReference, bool) {
	if len(code) != len(referencePrefix)+referenceWidth || !strings.HasPrefix(code, referencePrefix) {
		return BookingReference{}, false
	}
	v, err := strconv.ParseUint(strings.ToLower(code[len(referencePrefix):]), 36, 64)
	if err != nil {
		return BookingReference{}, false
	}
	return BookingReference{value: v}, true
}

func (r BookingReference) Value() uint64 { return r.value }

// Code renders "SY" followed by 8 upper-case base-36 characters.
func (r BookingReference) Code() string {
	s := strings.ToUpper(strconv.FormatUint(r.value%referenceSpace, 36))
	return referencePrefix + strings.Repeat("0", referenceWidth-len(s)) + s
}

// Numeric renders the reference as a zero-padded 8-digit number.
func (r BookingReference) Numeric() string {
	s := strconv.FormatUint(r.value%100000000, 10)
	return strings.Repeat("0", referenceWidth-len(s)) + s
}

// ==================== MISC ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
