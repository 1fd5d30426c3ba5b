package fileslug

import "testing"

func TestProtectVersionDots(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "foo-0.8.34-bar", "foo-0\x018\x0134-bar"},
		{"semver", "app-1.2.3", "app-1\x012\x013"},
		{"two part", "app-7.20", "app-7\x0120"},
		{"no version", "hello-world", "hello-world"},
		{"letters not matched", "a.b.c", "a.b.c"},
		{"dot not followed by digit", "7.txt", "7.txt"},
		{"adjacent to letters", "istatmenus7.20", "istatmenus7\x0120"},
		{"multiple versions", "2.10-2.12.26", "2\x0110-2\x0112\x0126"},
		{"trailing dot", "1.2.", "1\x012."},
		{"lone digits", "12345", "12345"},
		{"multibyte passthrough", "café 1.2", "café 1\x012"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := protectVersionDots(tt.in); got != tt.want {
				t.Fatalf("protectVersionDots(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRestoreVersionDots(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"app-1\x012\x013", "app-1.2.3"},
		{"hello-world", "hello-world"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := restoreVersionDots(tt.in); got != tt.want {
			t.Errorf("restoreVersionDots(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProtectRestoreInverse(t *testing.T) {
	inputs := []string{"app-1.2.3", "2.10-2.12.26", "istatmenus7.20", "plain"}
	for _, in := range inputs {
		if got := restoreVersionDots(protectVersionDots(in)); got != in {
			t.Errorf("restore(protect(%q)) = %q, want input back", in, got)
		}
	}
}
