// Package compat decides which registry versions are usable on a
// Bukkit-family server. Pure mods (fabric, forge, quilt, neoforge builds)
// are never compatible.
package compat

import (
	"strings"

	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

// accepted is the set of server platform tags a plugin jar can run on.
var accepted = map[string]struct{}{
	"spigot": {},
	"paper":  {},
	"purpur": {},
	"bukkit": {},
}

// AcceptedLoaders returns the server loader tags in a stable order, suitable
// for the registry's loader filter.
func AcceptedLoaders() []string {
	return []string{"spigot", "paper", "purpur", "bukkit"}
}

// Compatible reports whether any of the given loader tags belongs to the
// accepted set. Tags are matched case-insensitively.
func Compatible(loaders []string) bool {
	for _, loader := range loaders {
		if _, ok := accepted[strings.ToLower(loader)]; ok {
			return true
		}
	}
	return false
}

// Filter retains only the versions whose loader set intersects the accepted
// set. The result is a stable, order-preserving subset of the input, so the
// registry's newest-first ordering survives filtering.
func Filter(versions []registry.Version) []registry.Version {
	var compatible []registry.Version
	for _, v := range versions {
		if Compatible(v.Loaders) {
			compatible = append(compatible, v)
		}
	}
	return compatible
}
