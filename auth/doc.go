// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements origin-based access control for the visit counter.

Only pages served from a fixed set of sites may record visits:

	if !auth.IsAllowedOrigin(r.Header.Get("Origin")) {
		// 403
	}

Matching is exact, case-sensitive string equality on scheme+host+port.
The whitelist is compiled in; there is no runtime configuration.
*/
package auth
