package cdpchat

import "strings"

// Platform identifies a supported customer data platform.
type Platform string

// Supported platforms.
const (
	PlatformSegment   Platform = "segment"
	PlatformMParticle Platform = "mparticle"
	PlatformLytics    Platform = "lytics"
	PlatformZeotap    Platform = "zeotap"
)

// Platforms returns all supported platforms in canonical order.
func Platforms() []Platform {
	return []Platform{PlatformSegment, PlatformMParticle, PlatformLytics, PlatformZeotap}
}

// ParsePlatform converts a string to a Platform.
// Returns EINVALID if the string does not name a supported platform.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformSegment, PlatformMParticle, PlatformLytics, PlatformZeotap:
		return p, nil
	}
	return "", Errorf(EINVALID, "unsupported platform %q", s)
}

// DisplayName returns the platform name with canonical capitalization.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSegment:
		return "Segment"
	case PlatformMParticle:
		return "mParticle"
	case PlatformLytics:
		return "Lytics"
	case PlatformZeotap:
		return "Zeotap"
	}
	return string(p)
}

// Valid returns true if p is a supported platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformSegment, PlatformMParticle, PlatformLytics, PlatformZeotap:
		return true
	}
	return false
}

// DetectPlatforms matches normalized query terms against per-platform
// keyword sets and returns the platforms the terms refer to, in canonical
// order. It is a pure function: membership checks only, no index access.
func DetectPlatforms(terms []string, keywords map[Platform][]string) []Platform {
	termSet := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		termSet[t] = struct{}{}
	}

	var detected []Platform
	for _, p := range Platforms() {
		for _, kw := range keywords[p] {
			if _, ok := termSet[kw]; ok {
				detected = append(detected, p)
				break
			}
		}
	}
	return detected
}
