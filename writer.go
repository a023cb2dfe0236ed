package main

import (
	"fmt"
	"io"
)

// headerReserve is enough for the status line and the three fixed headers.
const headerReserve = 256

// newResponse assembles a complete response: status line, Content-Type,
// Content-Length, Connection: close, blank line and body.
func newResponse(status int, contentType string, body []byte) (*ResponseBuffer, error) {
	res := NewResponseBuffer(headerReserve + len(body))
	if err := res.Appendf("HTTP/1.1 %d %s\r\n", status, statusPhrase(status)); err != nil {
		return nil, err
	}
	if err := res.Appendf("Content-Type: %s\r\n", contentType); err != nil {
		return nil, err
	}
	if err := res.Appendf("Content-Length: %d\r\n", len(body)); err != nil {
		return nil, err
	}
	if err := res.AppendString("Connection: close\r\n\r\n"); err != nil {
		return nil, err
	}
	if err := res.Append(body); err != nil {
		return nil, err
	}
	return res, nil
}

// errorResponse renders a short plain text body for status. These always
// fit, so a failure here is a programming error.
func errorResponse(status int) *ResponseBuffer {
	body := fmt.Sprintf("%d %s\n", status, statusPhrase(status))
	res, err := newResponse(status, "text/plain; charset=utf-8", []byte(body))
	if err != nil {
		panic(err)
	}
	return res
}

// WriteResponse sends the whole buffer in one write.
func WriteResponse(w io.Writer, res *ResponseBuffer) error {
	n, err := w.Write(res.Bytes())
	if err != nil {
		return err
	}
	if n != res.Len() {
		return io.ErrShortWrite
	}
	return nil
}
