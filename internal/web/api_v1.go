package web

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/render"
	"github.com/rook-computer/starfield/internal/starfield"
)

const (
	headerRenderID = "X-Render-Id"
	headerSeed     = "X-Starfield-Seed"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type defaultsResponse struct {
	Config  starfield.Config `json:"config"`
	Width   int              `json:"width"`
	Height  int              `json:"height"`
	Format  raster.Format    `json:"format"`
	Formats []raster.Format  `json:"formats"`
}

type frameResponse struct {
	ID         string            `json:"id"`
	Seed       uint64            `json:"seed"`
	Config     starfield.Config  `json:"config"`
	Summary    starfield.Summary `json:"summary"`
	RenderedAt time.Time         `json:"renderedAt"`
}

type statusResponse struct {
	Phase         string         `json:"phase"`
	Message       string         `json:"message,omitempty"`
	Error         string         `json:"error,omitempty"`
	URL           string         `json:"url,omitempty"`
	Frame         *frameResponse `json:"frame,omitempty"`
	CachedRenders int            `json:"cachedRenders"`
	Display       bool           `json:"display"`
}

type renderResponse struct {
	ID      string            `json:"id"`
	Seed    uint64            `json:"seed"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Format  raster.Format     `json:"format"`
	URL     string            `json:"url"`
	Summary starfield.Summary `json:"summary"`
}

type displayResponse struct {
	ID string `json:"id"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "not_found", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/defaults", func(w http.ResponseWriter, r *http.Request) { handleDefaults(w, r, deps) })
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, deps) })
	r.Post("/renders", withRenderLimit(deps.Limiter, func(w http.ResponseWriter, r *http.Request) {
		handleCreateRender(w, r, deps)
	}))
	r.Get("/renders/{id}", func(w http.ResponseWriter, r *http.Request) { handleGetRender(w, r, deps) })
	r.Get("/starfield", withRenderLimit(deps.Limiter, func(w http.ResponseWriter, r *http.Request) {
		handleStarfield(w, r, deps)
	}))
	r.Get("/qrcode.png", func(w http.ResponseWriter, r *http.Request) { handleQRCode(w, r, deps) })
	r.Post("/display", withRenderLimit(deps.Limiter, func(w http.ResponseWriter, r *http.Request) {
		handleDisplay(w, r, deps)
	}))
	return r
}

func handleDefaults(w http.ResponseWriter, _ *http.Request, deps APIV1Deps) {
	writeJSON(w, http.StatusOK, defaultsResponse{
		Config:  starfield.DefaultConfig(),
		Width:   deps.Defaults.Width,
		Height:  deps.Defaults.Height,
		Format:  deps.Defaults.Format,
		Formats: raster.Formats(),
	})
}

func handleStatus(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	snap := deps.Status.Snapshot()
	resp := statusResponse{
		Phase:         snap.Phase.String(),
		Message:       snap.Message,
		Error:         snap.Err,
		URL:           snap.Network.URL,
		CachedRenders: deps.Renders.Len(),
		Display:       deps.Display != nil,
	}
	if resp.URL == "" {
		resp.URL = publicURL(r, deps)
	}
	if f := snap.Frame; f.ID != "" {
		resp.Frame = &frameResponse{
			ID:         f.ID,
			Seed:       f.Seed,
			Config:     f.Config,
			Summary:    f.Summary,
			RenderedAt: f.RenderedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCreateRender renders and caches an image, so the picture shown in the
// UI and the one downloaded afterwards are the same bytes.
func handleCreateRender(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	req, err := parseRenderRequest(w, r, deps.Defaults)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	started := time.Now()
	img, err := renderImage(req)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	deps.Renders.Put(img)
	deps.Logger.Infof("web", "render %s %dx%d stars=%d seed=%d in %s",
		img.ID, img.Width, img.Height, img.Summary.Stars, img.Seed, time.Since(started).Round(time.Millisecond))

	url := "/api/v1/renders/" + img.ID
	w.Header().Set("Location", url)
	writeJSON(w, http.StatusCreated, renderResponse{
		ID:      img.ID,
		Seed:    img.Seed,
		Width:   img.Width,
		Height:  img.Height,
		Format:  img.Format,
		URL:     url,
		Summary: img.Summary,
	})
}

func handleGetRender(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	id := chi.URLParam(r, "id")
	img, ok := deps.Renders.Get(id)
	if !ok {
		writeAPIError(w, http.StatusNotFound, "render_not_found", "render not found or expired")
		return
	}
	writeImage(w, img, r.URL.Query().Get("inline") != "1")
}

// handleStarfield renders straight to the response without caching.
func handleStarfield(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	req, err := parseRenderRequest(w, r, deps.Defaults)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	img, err := renderImage(req)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "render_failed", err.Error())
		return
	}
	writeImage(w, img, r.URL.Query().Get("download") == "1")
}

func handleQRCode(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	size := 256
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 64 || n > 1024 {
			writeAPIError(w, http.StatusBadRequest, "invalid_request", "size must be an integer in [64,1024]")
			return
		}
		size = n
	}
	png, err := render.EncodeQRCodePNG(publicURL(r, deps), size)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "qrcode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(png)
}

func handleDisplay(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.Display == nil {
		writeAPIError(w, http.StatusNotImplemented, "not_implemented", "no display attached")
		return
	}
	req, err := parseRenderRequest(w, r, deps.Defaults)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	id, err := deps.Display(r.Context(), req.Config, req.Seed)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "display_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, displayResponse{ID: id})
}

func writeImage(w http.ResponseWriter, img RenderedImage, attachment bool) {
	if attachment {
		setDownloadHeaders(w, renderFilename(img), img.Format.ContentType())
	} else {
		w.Header().Set("Content-Type", img.Format.ContentType())
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(headerRenderID, img.ID)
	w.Header().Set(headerSeed, strconv.FormatUint(img.Seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

func renderFilename(img RenderedImage) string {
	return fmt.Sprintf("starfield-%d%s", img.Seed, img.Format.Ext())
}

func publicURL(r *http.Request, deps APIV1Deps) string {
	if deps.PublicURL != "" {
		return deps.PublicURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func setDownloadHeaders(w http.ResponseWriter, filename, contentType string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	cd := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	w.Header().Set("Content-Disposition", cd)
}

func writeRequestError(w http.ResponseWriter, err error) {
	if isRequestError(err) {
		writeAPIError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	writeAPIError(w, http.StatusInternalServerError, "internal", err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
