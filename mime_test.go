package main

import "testing"

func TestMIMETypeOf(t *testing.T) {
	cases := []struct {
		path, want string
	}{
		{"/index.html", "text/html; charset=utf-8"},
		{"/INDEX.HTML", "text/html; charset=utf-8"},
		{"/style.Css", "text/css; charset=utf-8"},
		{"/app.js", "application/javascript"},
		{"/data.json", "application/json"},
		{"/img/logo.png", "image/png"},
		{"/photo.JPEG", "image/jpeg"},
		{"/archive.tar.gz", defaultMIMEType},
		{"/README", defaultMIMEType},
		{"/dir.d/file", defaultMIMEType},
		{"/trailing.", defaultMIMEType},
	}
	for _, c := range cases {
		ExpectEqual(t, c.want, mimeTypeOf(c.path))
	}
}
