// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID tags each request with a UUID, reusing a valid
X-Request-ID sent by the client:

	handler := middleware.WithRequestID(mux)
	id := middleware.RequestID(r.Context())

The id is echoed in the X-Request-ID response header.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs method, path, status, client IP, request id and duration_ms once
the handler returns.

# CORS Middleware

Lets the BI dashboard read the API from another origin. Only GET and
OPTIONS are allowed.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "unknown report")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
