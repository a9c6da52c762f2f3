package util

import "testing"

func TestSanitizeFileNameStripsSeparators(t *testing.T) {
	got, err := SanitizeFileName("dir/sub\\resume.pdf")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "dir_sub_resume.pdf" {
		t.Fatalf("expected separators replaced, got %q", got)
	}
}

func TestSanitizeFileNameRejectsTraversal(t *testing.T) {
	if _, err := SanitizeFileName("../../etc/passwd"); err == nil {
		t.Fatal("expected error for traversal name")
	}
}

func TestSanitizeFileNameRejectsEmpty(t *testing.T) {
	if _, err := SanitizeFileName("   "); err == nil {
		t.Fatal("expected error for blank name")
	}
}
