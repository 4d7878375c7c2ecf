package main

import (
	"fmt"

	"github.com/fwojciec/distill"
	dgin "github.com/fwojciec/distill/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if c.Key == "" {
		return distill.Errorf(distill.EINVALID, "READABILITY_SERVICE_KEY must not be empty")
	}
	if _, err := distill.ValidateBaseURL(c.EmailBaseURL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: email base url: %s\n", distill.ErrorMessage(err))
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	srv := dgin.NewServer(deps.Distiller, c.Key,
		dgin.WithAddr(c.Addr),
		dgin.WithLogger(deps.Logger),
		dgin.WithEmailBaseURL(c.EmailBaseURL),
		dgin.WithMaxBodyBytes(c.MaxBodyBytes),
		dgin.WithRateLimit(c.RateLimit, dgin.DefaultRateBurst),
		dgin.WithTrustedProxies(c.Proxies),
	)

	return srv.ListenAndServe(deps.Ctx)
}
