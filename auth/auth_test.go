// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestIsAllowedOrigin_Whitelisted(t *testing.T) {
	origins := []string{
		"https://wt.tepis.me",
		"https://wt.bgme.me",
		"https://rbq.desi",
		"https://wt.makai.city",
		"https://wt.0w0.bid",
	}

	for _, origin := range origins {
		t.Run(origin, func(t *testing.T) {
			if !IsAllowedOrigin(origin) {
				t.Errorf("IsAllowedOrigin(%q) = false, want true", origin)
			}
		})
	}
}

func TestIsAllowedOrigin_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		origin string
	}{
		{"empty", ""},
		{"unknown site", "https://evil.example"},
		{"suffix attack", "https://wt.tepis.me.evil.com"},
		{"prefix", "https://wt.tepis"},
		{"subdomain", "https://a.wt.tepis.me"},
		{"http scheme", "http://wt.tepis.me"},
		{"explicit port", "https://wt.tepis.me:443"},
		{"trailing slash", "https://wt.tepis.me/"},
		{"uppercase host", "https://WT.TEPIS.ME"},
		{"leading space", " https://wt.tepis.me"},
		{"localhost", "http://localhost:2333"},
		{"null origin", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsAllowedOrigin(tt.origin) {
				t.Errorf("IsAllowedOrigin(%q) = true, want false", tt.origin)
			}
		})
	}
}

func TestIsAllowedOrigin_NoPartialMatches(t *testing.T) {
	for _, origin := range AllowedOrigins() {
		for i := 0; i < len(origin); i++ {
			if IsAllowedOrigin(origin[:i]) {
				t.Errorf("prefix %q of %q accepted", origin[:i], origin)
			}
		}
		if IsAllowedOrigin(origin + "x") {
			t.Errorf("extension of %q accepted", origin)
		}
	}
}

func TestCheckOrigin(t *testing.T) {
	if err := CheckOrigin("https://rbq.desi"); err != nil {
		t.Errorf("CheckOrigin() error = %v, want nil", err)
	}
	if err := CheckOrigin(""); !errors.Is(err, ErrOriginRejected) {
		t.Errorf("CheckOrigin(\"\") error = %v, want ErrOriginRejected", err)
	}
	if err := CheckOrigin("https://evil.example"); !errors.Is(err, ErrOriginRejected) {
		t.Errorf("CheckOrigin() error = %v, want ErrOriginRejected", err)
	}
}

func TestAllowedOrigins_ReturnsCopy(t *testing.T) {
	origins := AllowedOrigins()
	if len(origins) != 5 {
		t.Fatalf("expected 5 origins, got %d", len(origins))
	}
	for _, o := range origins {
		if !strings.HasPrefix(o, "https://") {
			t.Errorf("origin %q is not https", o)
		}
	}

	origins[0] = "https://evil.example"
	if IsAllowedOrigin("https://evil.example") {
		t.Error("mutating the returned slice changed the whitelist")
	}
}
