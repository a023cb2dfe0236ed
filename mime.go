package main

import "strings"

const defaultMIMEType = "application/octet-stream"

type mimeType struct {
	ext         string
	contentType string
}

// Matched in order, first hit wins.
var mimeTypes = []mimeType{
	{".html", "text/html; charset=utf-8"},
	{".htm", "text/html; charset=utf-8"},
	{".css", "text/css; charset=utf-8"},
	{".js", "application/javascript"},
	{".json", "application/json"},
	{".txt", "text/plain; charset=utf-8"},
	{".xml", "application/xml"},
	{".png", "image/png"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
	{".gif", "image/gif"},
	{".svg", "image/svg+xml"},
	{".ico", "image/x-icon"},
	{".pdf", "application/pdf"},
	{".wasm", "application/wasm"},
	{".woff", "font/woff"},
	{".woff2", "font/woff2"},
}

// mimeTypeOf looks up the extension after the last '.' in path, ignoring
// case.
func mimeTypeOf(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return defaultMIMEType
	}
	ext := path[dot:]
	for _, m := range mimeTypes {
		if strings.EqualFold(ext, m.ext) {
			return m.contentType
		}
	}
	return defaultMIMEType
}
