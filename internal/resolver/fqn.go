package resolver

import "strings"

// Basename returns the part of a dotted name after the last dot.
func Basename(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// PackageName returns the part of a dotted name before the last dot, or ""
// for a bare identifier.
func PackageName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return ""
}

// IsFQN reports whether name is fully qualified (two or more dots).
func IsFQN(name string) bool {
	return strings.Count(name, ".") >= 2
}

// SplitFQN splits a name into package, namespace and local name from the
// right. Missing leading parts are empty, so "NS.A" yields ("", "NS", "A")
// and "P.Q.NS.A" yields ("P.Q", "NS", "A").
func SplitFQN(name string) (pkg, ns, local string) {
	local = Basename(name)
	rest := PackageName(name)
	if rest == "" {
		return "", "", local
	}
	ns = Basename(rest)
	pkg = PackageName(rest)
	return pkg, ns, local
}
