package resolver

import "testing"

func TestFQNHelpers(t *testing.T) {
	tests := []struct {
		in                string
		base, pkgName     string
		isFQN             bool
		sPkg, sNs, sLocal string
	}{
		{"A", "A", "", false, "", "", "A"},
		{"NS.A", "A", "NS", false, "", "NS", "A"},
		{"P.NS.A", "A", "P.NS", true, "P", "NS", "A"},
		{"P.P.I.A", "A", "P.P.I", true, "P.P", "I", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Basename(tt.in); got != tt.base {
				t.Errorf("Basename(%q) = %q, want %q", tt.in, got, tt.base)
			}
			if got := PackageName(tt.in); got != tt.pkgName {
				t.Errorf("PackageName(%q) = %q, want %q", tt.in, got, tt.pkgName)
			}
			if got := IsFQN(tt.in); got != tt.isFQN {
				t.Errorf("IsFQN(%q) = %v, want %v", tt.in, got, tt.isFQN)
			}
			p, n, l := SplitFQN(tt.in)
			if p != tt.sPkg || n != tt.sNs || l != tt.sLocal {
				t.Errorf("SplitFQN(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.in, p, n, l, tt.sPkg, tt.sNs, tt.sLocal)
			}
		})
	}
}
