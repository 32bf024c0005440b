// Package logging builds the process logger and the echo request logger.
package logging

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to stdout.  dev gets the text
// formatter, every other environment JSON.  An unknown level falls back
// to info.
func New(level string, dev bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if dev {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// RequestLogger logs one line per request once the error handler has
// written the response.
func RequestLogger(log logrus.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"route":      v.RoutePath,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
				"request_id": v.RequestID,
				"remote_ip":  v.RemoteIP,
			})
			switch {
			case v.Status >= 500:
				entry.Error("request")
			case v.Status >= 400:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}
