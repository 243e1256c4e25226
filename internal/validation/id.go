package validation

import "strconv"

const FieldID = "id"

const msgInvalidID = "ID deve ser um número inteiro positivo."

// ParseID validates a route identifier: decimal digits only, > 0, and
// representable as uint.
func ParseID(raw string) (uint, Errors) {
	if !digitsRe.MatchString(raw) {
		return 0, Errors{FieldID: msgInvalidID}
	}
	n, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || n == 0 {
		return 0, Errors{FieldID: msgInvalidID}
	}
	return uint(n), nil
}
