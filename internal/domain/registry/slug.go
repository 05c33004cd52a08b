package registry

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidSlug reports a slug that cannot exist on the registry.
var ErrInvalidSlug = errors.New("invalid slug")

// Slug is the registry's unique human-readable identifier for a plugin
// project.
type Slug string

// ParseSlug validates a user-supplied slug. The registry only assigns
// lowercase alphanumeric names with hyphens and underscores, so anything
// else is rejected before it hits the network.
func ParseSlug(name string) (Slug, error) {
	if name == "" {
		return "", errors.Wrap(ErrInvalidSlug, "slug cannot be empty")
	}
	for _, c := range name {
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isDigit && c != '-' && c != '_' {
			return "", errors.Wrapf(ErrInvalidSlug, "invalid character %q in %q", c, name)
		}
	}
	return Slug(name), nil
}

// String returns the slug as a plain string.
func (s Slug) String() string {
	return string(s)
}
