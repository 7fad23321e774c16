package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/novaent/labelsheet/pkg/buildinfo"
	"github.com/novaent/labelsheet/pkg/cache"
	"github.com/novaent/labelsheet/pkg/errors"
	lsio "github.com/novaent/labelsheet/pkg/io"
	"github.com/novaent/labelsheet/pkg/label"
	"github.com/novaent/labelsheet/pkg/pipeline"
	"github.com/novaent/labelsheet/pkg/sheet"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

type layoutsResponse struct {
	Data []pipeline.LayoutInfo `json:"data"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := pipeline.Layouts(s.cfg.Table(), s.cfg.CellMetrics())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutsResponse{Data: layouts})
}

func (s *Server) handleLabels(w http.ResponseWriter, r *http.Request) {
	opts := s.cfg.Options()
	opts.Strict = true
	q := r.URL.Query()
	if v := q.Get("layout"); v != "" {
		opts.Layout = v
	}
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if v := q.Get("title"); v != "" {
		opts.Title = v
	}

	rec, err := s.decodeRecord(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, hit, err := s.render(r.Context(), opts, rec)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := pipeline.DefaultFilename(s.now(), doc.Format)
	if errors.ValidateFilename(name) == nil {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	w.Header().Set("Content-Type", pipeline.ContentType(doc.Format))
	w.Header().Set("X-Layout", doc.Layout.String())
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		s.logger.Warn("write response", "id", RequestIDFrom(r.Context()), "err", err)
	}
}

// document is a rendered sheet as stored in the cache.
type document struct {
	Layout sheet.Option `json:"layout"`
	Format string       `json:"format"`
	Data   []byte       `json:"data"`
}

// render returns the document for opts and rec, from the cache when an
// identical request was rendered before. Cache failures only cost a render.
func (s *Server) render(ctx context.Context, opts pipeline.Options, rec label.Record) (document, bool, error) {
	key, err := cache.Key("labels", opts.Layout, opts.Format, opts.Title, rec, s.cfg)
	if err != nil {
		s.logger.Warn("cache key", "err", err)
	}
	if key != "" {
		if raw, ok, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn("cache get", "err", err)
		} else if ok {
			var doc document
			if err := json.Unmarshal(raw, &doc); err == nil {
				return doc, true, nil
			}
		}
	}

	res, err := s.runner.Run(ctx, opts, rec)
	if err != nil {
		return document{}, false, err
	}
	doc := document{Layout: res.Plan.Option, Format: res.Format, Data: res.Data}

	if key != "" {
		if raw, err := json.Marshal(doc); err == nil {
			if err := s.cache.Set(ctx, key, raw, DocumentTTL); err != nil {
				s.logger.Warn("cache set", "err", err)
			}
		}
	}
	return doc, false, nil
}

// decodeRecord reads the request body as label fields. Absent company-block
// fields come from the configured footer.
func (s *Server) decodeRecord(w http.ResponseWriter, r *http.Request) (label.Record, error) {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	fields, err := lsio.ReadFields(body, lsio.FormatJSON)
	if err != nil {
		return label.Record{}, err
	}
	s.cfg.Footer.Fill(fields)
	return label.FromMap(fields)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidLayout,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidInput,
		errors.ErrCodeMissingField:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidGeometry:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
