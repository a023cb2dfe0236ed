package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrMalformedRequest = errors.New("malformed request")

	errPeerClosed    = errors.New("peer closed before sending a request")
	errNoMethod      = errors.New("no space after method")
	errMethodTooLong = errors.New("method too long")
	errNoURI         = errors.New("no space after request target")
	errURITooLong    = errors.New("request target too long")
)

// ReadRequest performs a single read of at most requestBufSize bytes and
// parses the request line out of it. Headers and body are ignored.
func ReadRequest(r io.Reader) (*Request, error) {
	buf := make([]byte, requestBufSize)
	n, err := r.Read(buf)
	if n <= 0 {
		if err == nil || err == io.EOF {
			return nil, errPeerClosed
		}
		return nil, fmt.Errorf("Failed to read request: %w", err)
	}

	method, path, rawQuery, err := parseRequestLine(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	return &Request{
		Method:   method,
		Path:     path,
		RawQuery: rawQuery,
	}, nil
}

// parseRequestLine splits "METHOD SP URI SP ..." and the URI at its first
// '?'. Only the first line of raw is looked at. The path is returned
// undecoded.
func parseRequestLine(raw []byte) (method, path, rawQuery string, err error) {
	if nl := bytes.IndexByte(raw, '\n'); nl >= 0 {
		raw = raw[:nl]
	}
	raw = bytes.TrimSuffix(raw, []byte("\r"))

	sp := bytes.IndexByte(raw, ' ')
	if sp < 0 {
		return "", "", "", errNoMethod
	}
	if sp > maxMethodLen {
		return "", "", "", errMethodTooLong
	}
	method = string(raw[:sp])

	rest := raw[sp+1:]
	sp = bytes.IndexByte(rest, ' ')
	if sp < 0 {
		return "", "", "", errNoURI
	}
	// Targets are limited to maxURILen-1 bytes.
	if sp >= maxURILen {
		return "", "", "", errURITooLong
	}
	uri := string(rest[:sp])

	if q := strings.IndexByte(uri, '?'); q >= 0 {
		return method, uri[:q], uri[q+1:], nil
	}
	return method, uri, "", nil
}

// parseQuery decodes "k=v&k2=v2". Segments without '=' are dropped and
// anything past maxQueryPairs is ignored.
func parseQuery(raw string) Query {
	var q Query
	if raw == "" {
		return q
	}
	for _, seg := range strings.Split(raw, "&") {
		if len(q) >= maxQueryPairs {
			break
		}
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			continue
		}
		q = append(q, QueryPair{
			Key:   urlDecode(seg[:eq], maxKeyLen),
			Value: urlDecode(seg[eq+1:], maxValueLen),
		})
	}
	return q
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// urlDecode decodes %XX and '+' into at most limit-1 bytes. Invalid or
// incomplete escapes are copied through as is.
func urlDecode(s string, limit int) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s) && len(out) < limit-1; i++ {
		c := s[i]
		switch c {
		case '%':
			if i+2 < len(s) {
				hi, ok1 := unhex(s[i+1])
				lo, ok2 := unhex(s[i+2])
				if ok1 && ok2 {
					out = append(out, hi<<4|lo)
					i += 2
					continue
				}
			}
			out = append(out, c)
		case '+':
			out = append(out, ' ')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
