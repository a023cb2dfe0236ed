package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"
)

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %q, want %q", actual, expect)
	}
}

type MockAddr struct {
	str string
}

func (m MockAddr) Network() string { return "" }
func (m MockAddr) String() string  { return m.str }

// MockConn reads the request out of Buffer and appends the response to it,
// so after a worker has run Buffer holds only what was written.
type MockConn struct {
	*bytes.Buffer
	addr   MockAddr
	closed bool
}

func NewMockConn(request string) *MockConn {
	return &MockConn{bytes.NewBufferString(request), MockAddr{"(client)"}, false}
}

func (m *MockConn) Close() error {
	m.closed = true
	return nil
}

func (m *MockConn) LocalAddr() net.Addr {
	return nil
}

func (m *MockConn) RemoteAddr() net.Addr {
	return m.addr
}

func (m *MockConn) SetDeadline(t time.Time) error {
	return nil
}

func (m *MockConn) SetReadDeadline(t time.Time) error {
	return nil
}

func (m *MockConn) SetWriteDeadline(t time.Time) error {
	return nil
}

type testResponse struct {
	Status  int
	Phrase  string
	Headers map[string]string
	Body    string
}

// readResponse parses a status line, headers and a Content-Length body.
func readResponse(r io.Reader) (*testResponse, error) {
	br := bufio.NewReader(r)
	sl, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("Failed to read status line: %v", err)
	}
	fields := strings.SplitN(strings.TrimRight(sl, "\r\n"), " ", 3)
	if len(fields) != 3 || fields[0] != "HTTP/1.1" {
		return nil, fmt.Errorf("Invalid status line: %q", sl)
	}
	res := &testResponse{Phrase: fields[2], Headers: map[string]string{}}
	if res.Status, err = strconv.Atoi(fields[1]); err != nil {
		return nil, fmt.Errorf("Invalid status code: %s", fields[1])
	}

	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("Failed to read headers: %v", err)
		}
		if !strings.HasSuffix(line, "\r\n") {
			return nil, fmt.Errorf("Header line without CRLF: %q", line)
		}
		line = line[:len(line)-2]
		if line == "" {
			break
		}
		fs := strings.SplitN(line, ":", 2)
		if len(fs) != 2 {
			return nil, fmt.Errorf("Invalid header format: %q", line)
		}
		res.Headers[strings.ToLower(strings.TrimSpace(fs[0]))] = strings.TrimSpace(fs[1])
	}

	cl, err := strconv.Atoi(res.Headers["content-length"])
	if err != nil {
		return nil, fmt.Errorf("Invalid Content-Length")
	}
	body := make([]byte, cl)
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, fmt.Errorf("Failed to read body: %v", err)
	}
	if rest, _ := io.ReadAll(br); len(rest) != 0 {
		return nil, fmt.Errorf("%d bytes after body", len(rest))
	}
	res.Body = string(body)
	return res, nil
}

func mustReadResponse(t *testing.T, raw []byte) *testResponse {
	t.Helper()
	res, err := readResponse(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("bad response %q: %v", raw, err)
	}
	return res
}
