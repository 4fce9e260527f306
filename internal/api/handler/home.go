package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/vfg2006/ventas-api/pkg/log"
)

func Home(appName string) http.HandlerFunc {
	banner := fmt.Sprintf("<h2>%s</h2>", html.EscapeString(appName))

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(banner)); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Error al responder la portada")
		}
	}
}
