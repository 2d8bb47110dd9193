package main

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func withLogging(logger *log.Logger, h http.Handler) http.Handler {
	logFn := func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		h.ServeHTTP(rw, r)

		duration := time.Since(start)

		logger.WithFields(log.Fields{
			"uri":      uri,
			"method":   method,
			"duration": duration,
		}).Info()
	}
	return http.HandlerFunc(logFn)
}
