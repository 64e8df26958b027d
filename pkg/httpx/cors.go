package httpx

import "net/http"

// AllowedHeaders mirrors what the browser dashboard sends alongside its
// bearer token.
const AllowedHeaders = "authorization, x-client-info, apikey, content-type"

// CORS applies permissive cross-origin headers and short-circuits OPTIONS
// preflights with a 200 before any auth runs. Must be the outermost
// middleware on browser-facing routes.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetCORSHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetCORSHeaders writes the permissive CORS headers used across the API.
func SetCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", AllowedHeaders)
}
