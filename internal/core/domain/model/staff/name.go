package staff

import (
	"strings"

	"restaurant/internal/pkg/errs"
)

// maxNameLength matches the width of the name columns.
const maxNameLength = 120

func normalizeName(param, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	if n := len([]rune(name)); n > maxNameLength {
		return "", errs.NewValueIsOutOfRangeError(param+" length", n, 1, maxNameLength)
	}
	return name, nil
}
