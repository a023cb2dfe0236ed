package main

import (
	"errors"
	"net"
)

// Worker handles exactly one request on a connection and then closes it.
type Worker struct {
	conn   net.Conn
	router *Router
	req    *Request
	res    *ResponseBuffer
	status int // set when the worker answers without dispatching
}

type stateFunc func(*Worker) stateFunc

func NewWorker(router *Router) *Worker {
	return &Worker{router: router}
}

// Start takes ownership of conn and returns once it has been closed.
func (w *Worker) Start(conn net.Conn) {
	w.conn = conn
	for state := waitForRequest; state != nil; {
		state = state(w)
	}
}

func (w *Worker) remote() string {
	if addr := w.conn.RemoteAddr(); addr != nil {
		return addr.String()
	}
	return "(unknown)"
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	req, err := ReadRequest(w.conn)
	switch {
	case err == nil:
		w.req = req
		return requestReceived
	case errors.Is(err, ErrMalformedRequest):
		infof("%s: %v", w.remote(), err)
		w.status = 400
		return sendErrorResponse
	case errors.Is(err, errPeerClosed):
		return finishWorker
	default:
		warnf("%s: %v", w.remote(), err)
		return finishWorker
	}
}

func requestReceived(w *Worker) stateFunc {
	infof("%s %s %s", w.remote(), w.req.Method, w.req.Path)
	if w.req.Method != "GET" {
		w.status = 405
		return sendErrorResponse
	}
	w.req.Query = parseQuery(w.req.RawQuery)
	w.res = w.router.Dispatch(w.req)
	return sendResponse
}

func sendResponse(w *Worker) stateFunc {
	if err := WriteResponse(w.conn, w.res); err != nil {
		warnf("%s: write failed: %v", w.remote(), err)
	}
	return finishWorker
}

func sendErrorResponse(w *Worker) stateFunc {
	infof("%s: sending error response %d %s", w.remote(), w.status, statusPhrase(w.status))
	w.res = errorResponse(w.status)
	return sendResponse
}

func finishWorker(w *Worker) stateFunc {
	if w.res != nil {
		w.res.Free()
		w.res = nil
	}
	if err := w.conn.Close(); err != nil {
		infof("%s: close: %v", w.remote(), err)
	}
	w.req = nil
	return nil
}
