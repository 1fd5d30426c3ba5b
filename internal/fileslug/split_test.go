package fileslug

import "testing"

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		in       string
		wantBase string
		wantExt  string
	}{
		{"hello.txt", "hello", ".txt"},
		{"archive.tar.gz", "archive", ".tar.gz"},
		{"backup.tar.bz2", "backup", ".tar.bz2"},
		{"data.tar.xz", "data", ".tar.xz"},
		{"logs.tar.zst", "logs", ".tar.zst"},
		{"Archive.TAR.GZ", "Archive", ".TAR.GZ"},
		{".gitignore", "", ".gitignore"},
		{".env", "", ".env"},
		{".bashrc", "", ".bashrc"},
		{".env.local", ".env", ".local"},
		{"Makefile", "Makefile", ""},
		{"README", "README", ""},
		{"my.cool.file.txt", "my.cool.file", ".txt"},
		{"", "", ""},
		{"café.txt", "café", ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			base, ext := SplitExtension(tt.in)
			if base != tt.wantBase || ext != tt.wantExt {
				t.Fatalf("SplitExtension(%q) = (%q, %q), want (%q, %q)",
					tt.in, base, ext, tt.wantBase, tt.wantExt)
			}
		})
	}
}

func TestSplitExtensionRoundTrip(t *testing.T) {
	names := []string{
		"hello.txt", "archive.tar.gz", ".gitignore", ".env.local",
		"Makefile", "my.cool.file.txt", "café résumé.pdf", "a.b.c.d",
		"trailing.", ".", "..", "no dots at all",
	}
	for _, name := range names {
		base, ext := SplitExtension(name)
		if base+ext != name {
			t.Errorf("SplitExtension(%q): %q + %q != original", name, base, ext)
		}
	}
}
