package cli

import (
	"errors"
	"strconv"
	"strings"
)

var errNotPositive = errors.New("must be a whole number greater than zero")

// negativeAnswers are the replies treated as "no". Every other reply,
// including an empty line or a typo, counts as "yes".
var negativeAnswers = map[string]struct{}{
	"нет": {},
	"н":   {},
	"no":  {},
	"n":   {},
	"0":   {},
}

func isNegative(answer string) bool {
	_, ok := negativeAnswers[strings.ToLower(strings.TrimSpace(answer))]
	return ok
}

func parsePositive(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, errNotPositive
	}
	if n < 1 {
		return 0, errNotPositive
	}
	return n, nil
}
