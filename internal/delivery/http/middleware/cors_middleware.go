package middleware

import "net/http"

type CORSMiddleware struct {
	allowedOrigins string
}

// NewCORSMiddleware builds the CORS layer for the configured origins value
// (CORS_ALLOWED_ORIGINS). An empty value falls back to "*" for local
// development.
func NewCORSMiddleware(allowedOrigins string) *CORSMiddleware {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}
	return &CORSMiddleware{allowedOrigins: allowedOrigins}
}

func (r *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", r.allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
