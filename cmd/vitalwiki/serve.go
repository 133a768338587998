package main

import (
	"fmt"
	"net/http"
	"time"

	vitalhttp "github.com/pwalen/vitalwiki/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &vitalhttp.Server{
		Articles: deps.Articles,
		Session:  deps.Session,
		Logs:     deps.Logs,
	}

	httpServer := &http.Server{
		Addr:              c.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return httpServer.ListenAndServe()
}
