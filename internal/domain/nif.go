package domain

import (
	"fmt"
	"strconv"
)

// NIFControlAlphabet maps the numeric part of a NIF modulo 23 to its control
// letter.
const NIFControlAlphabet = "TRWAGMYFPDXBNJZSQVHLCKE"

// NIFDigits is the length of the numeric part of a NIF.
const NIFDigits = 8

// ControlLetter returns the control letter for the numeric part of a NIF.
func ControlLetter(digits string) (byte, error) {
	if len(digits) != NIFDigits {
		return 0, fmt.Errorf("%w: want %d digits, got %q", ErrInvalidIdentifier, NIFDigits, digits)
	}
	for i := range len(digits) {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: non-digit in %q", ErrInvalidIdentifier, digits)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}
	return NIFControlAlphabet[n%len(NIFControlAlphabet)], nil
}

// ValidateNIF checks that nif is eight digits followed by the matching
// control letter.
func ValidateNIF(nif string) error {
	if len(nif) != NIFDigits+1 {
		return fmt.Errorf("%w: %q has length %d", ErrInvalidIdentifier, nif, len(nif))
	}
	want, err := ControlLetter(nif[:NIFDigits])
	if err != nil {
		return err
	}
	if got := nif[NIFDigits]; got != want {
		return fmt.Errorf("%w: %q has control letter %c, want %c", ErrInvalidIdentifier, nif, got, want)
	}
	return nil
}
