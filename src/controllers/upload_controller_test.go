package controllers

import "testing"

func TestUploadSubdir(t *testing.T) {
	cases := []struct {
		filename string
		wantSub  string
		wantOK   bool
	}{
		{"resume.pdf", "resumes", true},
		{"cover-letter.DOCX", "resumes", true},
		{"photo.png", "images", true},
		{"logo.JPG", "images", true},
		{"payload.exe", "", false},
		{"script.js", "", false},
		{"noextension", "", false},
	}

	for _, tc := range cases {
		sub, ok := uploadSubdir(tc.filename)
		if sub != tc.wantSub || ok != tc.wantOK {
			t.Errorf("uploadSubdir(%q) = (%q, %v), want (%q, %v)",
				tc.filename, sub, ok, tc.wantSub, tc.wantOK)
		}
	}
}
