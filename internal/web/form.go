package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rook-computer/starfield/internal/config"
	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/starfield"
)

const (
	maxRequestBody = 64 << 10
	maxStarCount   = 200000
)

// RenderDefaults fills in request fields that describe the output rather than
// the starfield: size and format. Starfield options have no defaults here;
// an absent option is off.
type RenderDefaults struct {
	Width  int
	Height int
	Format raster.Format
}

type renderRequest struct {
	Config starfield.Config
	Width  int
	Height int
	// Seed 0 means draw a fresh seed.
	Seed   uint64
	Format raster.Format
}

// renderBody is the JSON form of a render request. Unknown keys are ignored.
type renderBody struct {
	starfield.Config
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   uint64 `json:"seed"`
	Format string `json:"format"`
}

type requestError struct{ msg string }

func (e *requestError) Error() string { return e.msg }

func badRequest(format string, args ...interface{}) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

func isRequestError(err error) bool {
	var re *requestError
	return errors.As(err, &re)
}

// parseRenderRequest reads a render request from a JSON body, a form body or
// the query string.
func parseRenderRequest(w http.ResponseWriter, r *http.Request, defaults RenderDefaults) (renderRequest, error) {
	req := renderRequest{Width: defaults.Width, Height: defaults.Height, Format: defaults.Format}

	if r.Body != nil && r.Method != http.MethodGet {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body renderBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return renderRequest{}, badRequest("invalid JSON body: %v", err)
		}
		req.Config = body.Config
		req.Seed = body.Seed
		if body.Width != 0 {
			req.Width = body.Width
		}
		if body.Height != 0 {
			req.Height = body.Height
		}
		if body.Format != "" {
			f, err := raster.ParseFormat(body.Format)
			if err != nil {
				return renderRequest{}, badRequest("%v", err)
			}
			req.Format = f
		}
		return req, validateRenderRequest(req)
	}

	if err := r.ParseForm(); err != nil {
		return renderRequest{}, badRequest("invalid form: %v", err)
	}
	if err := applyFormValues(&req, r.Form); err != nil {
		return renderRequest{}, err
	}
	return req, validateRenderRequest(req)
}

func applyFormValues(req *renderRequest, form url.Values) error {
	var err error
	if req.Config.StarCount, err = formInt(form, "starCount", 0); err != nil {
		return err
	}
	if req.Config.GlowBandIntensity, err = formInt(form, "glowBandIntensity", 0); err != nil {
		return err
	}
	if req.Config.GlowBand, err = formBool(form, "glowBand"); err != nil {
		return err
	}
	if req.Config.BrightConcentration, err = formBool(form, "brightConcentration"); err != nil {
		return err
	}
	if req.Config.StarColors, err = formBool(form, "starColors"); err != nil {
		return err
	}
	if req.Width, err = formInt(form, "width", req.Width); err != nil {
		return err
	}
	if req.Height, err = formInt(form, "height", req.Height); err != nil {
		return err
	}
	if raw := strings.TrimSpace(form.Get("seed")); raw != "" {
		if req.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return badRequest("seed must be an unsigned integer (got %q)", raw)
		}
	}
	if raw := form.Get("format"); raw != "" {
		f, err := raster.ParseFormat(raw)
		if err != nil {
			return badRequest("%v", err)
		}
		req.Format = f
	}
	return nil
}

func validateRenderRequest(req renderRequest) error {
	if err := config.CheckSize(req.Width, req.Height); err != nil {
		return badRequest("%v", err)
	}
	if n := req.Config.StarCount; n < 0 || n > maxStarCount {
		return badRequest("starCount must be in [0,%d] (got %d)", maxStarCount, n)
	}
	if i := req.Config.GlowBandIntensity; i < 0 || i > starfield.MaxGlowBandIntensity {
		return badRequest("glowBandIntensity must be in [0,%d] (got %d)", starfield.MaxGlowBandIntensity, i)
	}
	return nil
}

func formInt(form url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(form.Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("%s must be an integer (got %q)", key, raw)
	}
	return n, nil
}

// formBool reads a checkbox. Browsers omit unchecked boxes, so absent is false.
func formBool(form url.Values, key string) (bool, error) {
	raw := strings.ToLower(strings.TrimSpace(form.Get(key)))
	switch raw {
	case "", "off", "false", "0", "no":
		return false, nil
	case "on", "true", "1", "yes":
		return true, nil
	}
	return false, badRequest("%s must be a boolean (got %q)", key, raw)
}
