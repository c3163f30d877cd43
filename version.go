// Package draftail holds the module version. The editor behavior lives in
// package behavior, the content model in package content.
package draftail

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// UserAgent names the module and its version in CLI output and logs.
func UserAgent() string {
	return "draftail/" + Version()
}

// IsSemver reports whether v is a full SemVer 2.0.0 version without the `v`
// prefix. Shorthands such as 1.2 are rejected.
func IsSemver(v string) bool {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "v") {
		return false
	}
	core, _, _ := strings.Cut(v, "+")
	core, _, _ = strings.Cut(core, "-")
	return strings.Count(core, ".") == 2 && semver.IsValid("v"+v)
}
