package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
)

// maxFileSize leaves room for the headers within maxResponseSize.
var maxFileSize int64 = maxResponseSize - headerReserve

var errShortRead = errors.New("short read")

// readBody reads exactly size bytes from r in one logical read.
func readBody(r io.Reader, size int64) ([]byte, error) {
	body := make([]byte, size)
	n, err := io.ReadFull(r, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %d of %d bytes: %v", errShortRead, n, size, err)
	}
	return body, nil
}

// FileServer serves regular files below Root. Directory requests are
// answered with the Index file inside them.
type FileServer struct {
	Root  string
	Index string
}

func NewFileServer(root, index string) *FileServer {
	return &FileServer{Root: root, Index: index}
}

// safePath reports whether path may be mapped onto the document root.
func safePath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.Contains(path, "..")
}

// Serve maps path onto the document root and returns a complete response.
// Every failure is rendered as an error response.
func (fs *FileServer) Serve(path string) *ResponseBuffer {
	if !safePath(path) {
		warnf("rejected unsafe path %q", path)
		return errorResponse(400)
	}

	name := fs.Root + path
	if st, err := os.Stat(name); err == nil && st.IsDir() {
		if !strings.HasSuffix(name, "/") {
			name += "/"
		}
		name += fs.Index
	}

	f, err := os.Open(name)
	if err != nil {
		infof("open %s: %v", name, err)
		return errorResponse(404)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		errorf("stat %s: %v", name, err)
		return errorResponse(500)
	}
	if !st.Mode().IsRegular() {
		errorf("%s is not a regular file (%s)", name, st.Mode().Type())
		return errorResponse(500)
	}
	size := st.Size()
	if size > maxFileSize {
		errorf("%s is too large to serve (%s)", name, humanize.IBytes(uint64(size)))
		return errorResponse(500)
	}

	body, err := readBody(f, size)
	if err != nil {
		errorf("reading %s: %v", name, err)
		return errorResponse(500)
	}

	res, err := newResponse(200, mimeTypeOf(name), body)
	if err != nil {
		errorf("building response for %s: %v", name, err)
		return errorResponse(500)
	}
	infof("serving %s (%s)", name, humanize.Bytes(uint64(size)))
	return res
}
