package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RandomSuffix returns a short random string used to make uploaded
// filenames unique, so browsers never serve a stale cached image.
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
