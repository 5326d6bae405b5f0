package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind is the classification of a raw url string.
type Kind int

const (
	// KindInvalid marks a url that is not storable.
	KindInvalid Kind = iota
	// KindAbsolute is a syntactically valid absolute URL (has a scheme).
	KindAbsolute
	// KindRelativeUserInput is a relative reference starting with /, ? or #.
	KindRelativeUserInput
	// KindNamedRoute is a bracketed route token such as <front> or <nolink>.
	KindNamedRoute
)

func (k Kind) String() string {
	switch k {
	case KindAbsolute:
		return "absolute"
	case KindRelativeUserInput:
		return "relative"
	case KindNamedRoute:
		return "route"
	default:
		return "invalid"
	}
}

// routePattern matches internal route tokens: angle-bracket-wrapped lowercase letters.
var routePattern = regexp.MustCompile(`^<[a-z]+>$`)

// Absent reports whether a field value counts as "not provided".
// Missing map entries arrive here as "", so the empty string is the
// single absence marker.
func Absent(s string) bool {
	return s == ""
}

// Classify decides the kind of a raw url string.
//
// The same function backs edit-time validation and render-time resolution,
// so a row accepted by validation can never fail to resolve later.
func Classify(raw string) Kind {
	u, err := url.Parse(raw)

	if err == nil && u.Scheme != "" {
		// Scheme-only strings like "https://" are not navigable.
		if u.Host == "" && u.Opaque == "" {
			return KindInvalid
		}
		return KindAbsolute
	}

	if err == nil && (strings.HasPrefix(raw, "/") ||
		strings.HasPrefix(raw, "?") ||
		strings.HasPrefix(raw, "#")) {
		return KindRelativeUserInput
	}

	if routePattern.MatchString(raw) {
		return KindNamedRoute
	}

	return KindInvalid
}

// ErrUnresolvable is returned by Resolve for urls that classify as invalid.
var ErrUnresolvable = errors.New("url does not resolve to a renderable target")

// Resolve turns an accepted url string into its target variant.
func Resolve(raw string) (Target, error) {
	switch Classify(raw) {
	case KindAbsolute:
		return Target{Kind: TargetExternal, Value: raw}, nil
	case KindNamedRoute:
		return Target{Kind: TargetRoute, Value: strings.Trim(raw, "<>")}, nil
	case KindRelativeUserInput:
		return Target{Kind: TargetUserPath, Value: raw}, nil
	default:
		return Target{}, fmt.Errorf("%w: %q", ErrUnresolvable, raw)
	}
}
