package main

type routeKind int

const (
	routeHome routeKind = iota
	routeAbout
	routeHealth
)

type route struct {
	path string
	kind routeKind
}

// Exact-match paths checked before the file server, in order.
var routes = []route{
	{"/", routeHome},
	{"/about", routeAbout},
	{"/health", routeHealth},
}

const homePage = `<!DOCTYPE html>
<html>
<head><title>Home</title></head>
<body>
<h1>Hello from a tiny HTTP server</h1>
<p>Try <a href="/about">/about</a> or <a href="/health">/health</a>.</p>
</body>
</html>
`

const aboutPage = `<!DOCTYPE html>
<html>
<head><title>About</title></head>
<body>
<h1>About</h1>
<p>One request per connection, one goroutine per connection.</p>
<p><a href="/">Home</a></p>
</body>
</html>
`

const healthBody = `{"status":"ok"}`

// Router dispatches GET requests to built-in pages or to Files.
type Router struct {
	Files *FileServer
}

func NewRouter(files *FileServer) *Router {
	return &Router{Files: files}
}

// Dispatch never returns nil. A request that matches no route is handed to
// the file server, which produces the 404 itself.
func (rt *Router) Dispatch(req *Request) *ResponseBuffer {
	if req.Method != "GET" {
		return errorResponse(405)
	}
	for _, r := range routes {
		if r.path == req.Path {
			return rt.serveBuiltin(r.kind, req)
		}
	}
	return rt.Files.Serve(req.Path)
}

func (rt *Router) serveBuiltin(kind routeKind, req *Request) *ResponseBuffer {
	var (
		contentType string
		body        string
	)
	switch kind {
	case routeHome:
		contentType, body = "text/html; charset=utf-8", homePage
	case routeAbout:
		contentType, body = "text/html; charset=utf-8", aboutPage
	case routeHealth:
		contentType, body = "application/json", healthBody
	default:
		errorf("no handler for route kind %d (%s)", kind, req.Path)
		return errorResponse(500)
	}
	res, err := newResponse(200, contentType, []byte(body))
	if err != nil {
		errorf("building response for %s: %v", req.Path, err)
		return errorResponse(500)
	}
	return res
}
