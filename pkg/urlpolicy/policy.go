// Package urlpolicy decides whether decoded text is a URL on the trusted
// domain. The check is purely structural: no DNS, no network access.
package urlpolicy

import (
	"net"
	"net/url"
	"qrscanner/pkg/serrors"
	"strings"
)

// Policy is the trusted domain root. A host is trusted when it equals the root
// or is one of its subdomains. The zero Policy trusts nothing.
type Policy struct {
	domain string
}

// New builds a Policy from a domain root such as "theocourbe.com". The value
// is trimmed and lower-cased; empty values and values that are not a bare host
// name are rejected.
func New(domain string) (Policy, error) {
	d := strings.Trim(strings.ToLower(strings.TrimSpace(domain)), ".")
	if d == "" {
		return Policy{}, serrors.With(serrors.ErrBadRequest, "trusted domain must not be empty")
	}
	if strings.ContainsAny(d, "/:@?# \t") {
		return Policy{}, serrors.With(serrors.ErrBadRequest, "trusted domain %q is not a host name", domain)
	}
	if net.ParseIP(d) != nil {
		return Policy{}, serrors.With(serrors.ErrBadRequest, "trusted domain %q must not be an IP address", domain)
	}

	return Policy{domain: d}, nil
}

// MustNew is like New but panics on an invalid domain.
func MustNew(domain string) Policy {
	p, err := New(domain)
	if err != nil {
		panic(err)
	}

	return p
}

// Domain returns the lower-cased domain root.
func (p Policy) Domain() string { return p.domain }

// Allows is a shorthand for IsTrusted(text, p).
func (p Policy) Allows(text string) bool { return IsTrusted(text, p) }

// IsTrusted reports whether text parses as an absolute URL whose lower-cased
// host equals the policy domain or ends with "." + domain. Unparsable input,
// relative or scheme-relative references, and IP literal hosts are never
// trusted.
func IsTrusted(text string, p Policy) bool {
	if p.domain == "" || text == "" {
		return false
	}

	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	// absolute means both a scheme and an authority
	if u.Scheme == "" || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || net.ParseIP(host) != nil {
		return false
	}

	return host == p.domain || strings.HasSuffix(host, "."+p.domain)
}
