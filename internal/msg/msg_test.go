package msg

import (
	"strings"
	"testing"
)

func TestFileLocked(t *testing.T) {
	out := FileLocked("/tmp/report.docx")

	if !strings.Contains(out, `Please close the file "/tmp/report.docx" and try again.`) {
		t.Errorf("missing instruction line, got:\n%s", out)
	}
	if !strings.Contains(out, "File Save Error") {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "currently open in another program") {
		t.Errorf("missing explanation, got:\n%s", out)
	}
}

func TestFileLocked_EmptyPath(t *testing.T) {
	out := FileLocked("")

	// Empty input gets no special-casing: the quotes are simply empty.
	if !strings.Contains(out, `Please close the file "" and try again.`) {
		t.Errorf("empty path not handled verbatim, got:\n%s", out)
	}
}

func TestFormat_PathVerbatim(t *testing.T) {
	// Paths must survive interpolation unmodified: no escaping, no
	// truncation, whatever characters they carry.
	paths := []string{
		"/tmp/report.docx",
		`C:\Users\anna\Documents\report.docx`,
		"/home/user/file with spaces.txt",
		`/tmp/quo"ted.txt`,
		"/tmp/uni/路径/文件.txt",
		"",
		strings.Repeat("a", 4096),
	}

	for _, kind := range Kinds() {
		for _, path := range paths {
			out := Format(kind, path)
			if !strings.Contains(out, path) {
				t.Errorf("Format(%s, %q): output does not contain path verbatim", kind, path)
			}
		}
	}
}

func TestFormat_Deterministic(t *testing.T) {
	for _, kind := range Kinds() {
		first := Format(kind, "/tmp/a.txt")
		for i := 0; i < 3; i++ {
			if got := Format(kind, "/tmp/a.txt"); got != first {
				t.Errorf("Format(%s) not deterministic", kind)
			}
		}
	}
}

func TestFormat_UnknownKindFallsBack(t *testing.T) {
	if got := Format(Kind(99), "/tmp/a.txt"); got != FileLocked("/tmp/a.txt") {
		t.Errorf("unknown kind should render the locked template, got:\n%s", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLocked, "locked"},
		{KindPermission, "permission"},
		{KindReadOnly, "readonly"},
		{KindDiskFull, "diskfull"},
		{KindMissingDirectory, "missingdir"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", kind.String(), err)
		}
		if parsed != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind.String(), parsed, kind)
		}
	}

	if parsed, err := ParseKind("READONLY"); err != nil || parsed != KindReadOnly {
		t.Errorf("ParseKind should be case-insensitive, got %v, %v", parsed, err)
	}

	if _, err := ParseKind("bogus"); err == nil {
		t.Error("expected error for unknown kind name")
	}
}
