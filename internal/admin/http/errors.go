package http

import (
	"net/http"
	"runtime/debug"

	"github.com/hirelane/staffdesk/pkg/httpx"
)

func isDev(env string) bool {
	return env == "dev" || env == "development"
}

// writeServerError writes a 500 with a stable message. The underlying
// error and a stack only leak into the body in dev environments.
func writeServerError(w http.ResponseWriter, env, msg string, err error) {
	body := httpx.ErrorBody{Error: msg}
	if isDev(env) && err != nil {
		body.Details = err.Error()
		body.Stack = string(debug.Stack())
	}
	httpx.WriteJSON(w, http.StatusInternalServerError, body)
}
