// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "errors"

var ErrOriginRejected = errors.New("origin not allowed")

// allowedOrigins are the sites permitted to record visits.
var allowedOrigins = map[string]struct{}{
	"https://wt.tepis.me":   {},
	"https://wt.bgme.me":    {},
	"https://rbq.desi":      {},
	"https://wt.makai.city": {},
	"https://wt.0w0.bid":    {},
}

// IsAllowedOrigin reports whether origin exactly matches a whitelisted
// scheme+host+port. No wildcard, subdomain, or case-insensitive matching.
func IsAllowedOrigin(origin string) bool {
	_, ok := allowedOrigins[origin]
	return ok
}

// CheckOrigin returns ErrOriginRejected unless origin is whitelisted.
func CheckOrigin(origin string) error {
	if origin == "" || !IsAllowedOrigin(origin) {
		return ErrOriginRejected
	}
	return nil
}

// AllowedOrigins returns a copy of the whitelist.
func AllowedOrigins() []string {
	origins := make([]string, 0, len(allowedOrigins))
	for origin := range allowedOrigins {
		origins = append(origins, origin)
	}
	return origins
}
