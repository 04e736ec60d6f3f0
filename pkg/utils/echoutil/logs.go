package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LogHandlerFunc logs each request and its outcome.
//
// Failed requests are logged at warn level, others at info level.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		began := time.Now()
		c.Logger().Debugf("<- %s %s from %s", req.Method, req.URL, c.RealIP())

		err := next(c)

		elapsed := time.Since(began)
		status := c.Response().Status
		if herr, ok := err.(*echo.HTTPError); ok {
			status = herr.Code
		}
		if err != nil {
			c.Logger().Warnf("-> %s %s: %d in %v: %v", req.Method, req.URL, status, elapsed, err)
		} else {
			c.Logger().Infof("-> %s %s: %d in %v", req.Method, req.URL, status, elapsed)
		}
		return err
	}
}

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"":      log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// SetLevel sets the level of e.Logger by its name.
//
// Unknown names fall back to warn.
func SetLevel(e *echo.Echo, loglevel string) {
	lvl, ok := levels[strings.ToLower(loglevel)]
	if !ok {
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
		return
	}
	e.Logger.SetLevel(lvl)
}
