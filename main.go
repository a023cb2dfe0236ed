package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
)

// Config holds the command line settings.
type Config struct {
	Port    int
	Root    string
	Index   string
	Verbose bool
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("Invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.Index == "" {
		return fmt.Errorf("Index file name must not be empty")
	}
	return nil
}

// parseConfig reads flags from args. A positional port argument overrides
// -port.
func parseConfig(args []string) (*Config, error) {
	fs := flag.NewFlagSet("tinyhttpd", flag.ContinueOnError)
	cfg := &Config{}
	fs.IntVar(&cfg.Port, "port", 8080, "port number")
	fs.StringVar(&cfg.Root, "root", "./www", "document root")
	fs.StringVar(&cfg.Index, "index", "index.html", "file served for directory requests")
	fs.BoolVar(&cfg.Verbose, "v", false, "log every request")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		p, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return nil, fmt.Errorf("Invalid port %q", fs.Arg(0))
		}
		cfg.Port = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serve(cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	signal.Ignore(syscall.SIGPIPE)

	ln, err := Listen("0.0.0.0", cfg.Port)
	if err != nil {
		return err
	}

	router := NewRouter(NewFileServer(cfg.Root, cfg.Index))
	log.Printf("listening on %s, serving %s", ln.Addr(), cfg.Root)
	if err := NewServer(ln, router).Serve(ctx); err != nil {
		return err
	}
	log.Printf("server stopped")
	return nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.Verbose)
	if err := serve(cfg); err != nil {
		errorf("%v", err)
		os.Exit(1)
	}
}
