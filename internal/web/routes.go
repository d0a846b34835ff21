package web

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rook-computer/starfield/internal/assets"
	"github.com/rook-computer/starfield/internal/logging"
)

// NewRouter builds the standard router used by both the kiosk and the serve command:
// - /api/v1/* for the API
// - / for the web UI
func NewRouter(staticDir string, deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))

	r.Mount("/api/v1", apiV1Router(deps))
	r.Handle("/*", StaticUIHandler(staticDir))
	return r
}

func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()
			next.ServeHTTP(ww, r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			if status >= http.StatusInternalServerError {
				logger.Errorf("web", "%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(started).Round(time.Millisecond))
				return
			}
			logger.Infof("web", "%s %s -> %d %dB (%s)", r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(started).Round(time.Millisecond))
		})
	}
}

// StaticUIHandler serves either the embedded UI assets or staticDir.
func StaticUIHandler(staticDir string) http.Handler {
	if staticDir == "" {
		return cleanPath(http.FileServer(http.FS(assets.WebUI)))
	}

	if st, err := os.Stat(staticDir); err != nil || !st.IsDir() {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		})
	}
	return cleanPath(http.FileServer(http.Dir(staticDir)))
}

func cleanPath(fileServer http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = filepath.ToSlash(filepath.Clean("/" + r.URL.Path))
		fileServer.ServeHTTP(w, r)
	})
}
