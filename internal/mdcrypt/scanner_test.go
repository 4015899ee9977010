package mdcrypt_test

import (
	"testing"

	"mdcrypt/internal/mdcrypt"
	"mdcrypt/internal/storage"
)

func newTestScanner() (*mdcrypt.Scanner, *storage.MemoryStorage) {
	st := storage.NewMemoryStorage()
	return mdcrypt.NewScanner(st, mdcrypt.DefaultExtensionPolicy()), st
}

func paths(files []*mdcrypt.FileNode) []string {
	var out []string
	for _, f := range files {
		out = append(out, f.Path)
	}
	return out
}

func TestScanner_FilesUnder(t *testing.T) {
	scanner, st := newTestScanner()
	st.AddFile("notes/a.md", "a")
	st.AddFile("notes/sub/b.md", "b")
	st.AddFile("other/c.md", "c")

	files, err := scanner.FilesUnder(&mdcrypt.DirectoryNode{Path: "notes"})
	if err != nil {
		t.Fatalf("FilesUnder() error = %v", err)
	}

	got := paths(files)
	want := []string{"notes/a.md", "notes/sub/b.md"}
	if len(got) != len(want) {
		t.Fatalf("FilesUnder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilesUnder()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanner_FilteredViews(t *testing.T) {
	scanner, st := newTestScanner()
	st.AddFile("notes/a.md", "a")
	st.AddFile("notes/b.mdenc", "b")
	st.AddFile("notes/c.encrypted", "c")
	st.AddFile("notes/d.txt", "d")

	dir := &mdcrypt.DirectoryNode{Path: "notes"}

	md, err := scanner.MarkdownFilesUnder(dir)
	if err != nil {
		t.Fatalf("MarkdownFilesUnder() error = %v", err)
	}
	if len(md) != 1 || md[0].Path != "notes/a.md" {
		t.Errorf("MarkdownFilesUnder() = %v, want [notes/a.md]", paths(md))
	}

	enc, err := scanner.EncryptedFilesUnder(dir)
	if err != nil {
		t.Fatalf("EncryptedFilesUnder() error = %v", err)
	}
	if len(enc) != 2 {
		t.Errorf("EncryptedFilesUnder() = %v, want two files", paths(enc))
	}
}

func TestScanner_EmptyResultIsNotAnError(t *testing.T) {
	scanner, st := newTestScanner()
	st.AddFile("other/a.md", "a")

	files, err := scanner.MarkdownFilesUnder(&mdcrypt.DirectoryNode{Path: "notes"})
	if err != nil {
		t.Fatalf("MarkdownFilesUnder() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("MarkdownFilesUnder() = %v, want empty", paths(files))
	}
}

func TestScanner_RestartableListing(t *testing.T) {
	scanner, st := newTestScanner()
	st.AddFile("notes/a.md", "a")

	dir := &mdcrypt.DirectoryNode{Path: "notes"}
	first, err := scanner.MarkdownFilesUnder(dir)
	if err != nil {
		t.Fatalf("first scan error = %v", err)
	}

	// Files added after the first scan show up in the next one: each
	// call re-derives the listing.
	st.AddFile("notes/b.md", "b")

	second, err := scanner.MarkdownFilesUnder(dir)
	if err != nil {
		t.Fatalf("second scan error = %v", err)
	}

	if len(first) != 1 || len(second) != 2 {
		t.Errorf("scan sizes = %d then %d, want 1 then 2", len(first), len(second))
	}
}
