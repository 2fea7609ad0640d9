package gateway

import (
	"io"
	"net/http"

	"github.com/senselink/senselink-core/internal/endpoint"
)

// handleResource adapts one endpoint table entry to an HTTP handler.
//
// Each request gets a fresh reply buffer of the configured capacity; the
// dispatcher either fills it with the complete reply or reports a status
// with no payload. The buffer is never served partially.
func (s *Server) handleResource(res endpoint.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := s.buildRequest(w, r, res.Method)
		if !ok {
			return
		}

		buf := make([]byte, s.cfg.ReplyBufferSize)
		status, n := res.Handler(req, buf)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(httpStatus(status, n))
		if n > 0 {
			//nolint:errcheck // Best effort response write
			w.Write(buf[:n])
		}
	}
}

// buildRequest extracts the selector from the HTTP request.
//
// Read selectors travel in the query string. The wire layer parses the
// compact "&class=NNN" form, so the raw query is re-prefixed with '&'
// before handing it over. Submit selectors travel in the request body.
func (s *Server) buildRequest(w http.ResponseWriter, r *http.Request, method endpoint.Method) (endpoint.Request, bool) {
	var req endpoint.Request

	switch method {
	case endpoint.MethodRead:
		if r.URL.RawQuery != "" {
			req.Query = "&" + r.URL.RawQuery
		}
	case endpoint.MethodSubmit:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			s.logger.Warn("reading request body",
				"path", r.URL.Path,
				"error", err,
			)
			http.Error(w, "unreadable request body", http.StatusBadRequest)
			return endpoint.Request{}, false
		}
		req.Payload = body
	}

	return req, true
}

// httpStatus maps an endpoint status onto the HTTP status space.
//
// StatusChanged carries 200 when a reply accompanies it and 204 when the
// reply is empty, mirroring how submitted lookups answer.
func httpStatus(status endpoint.Status, n int) int {
	switch status {
	case endpoint.StatusContent:
		return http.StatusOK
	case endpoint.StatusChanged:
		if n > 0 {
			return http.StatusOK
		}
		return http.StatusNoContent
	case endpoint.StatusBadRequest:
		return http.StatusBadRequest
	case endpoint.StatusNotFound:
		return http.StatusNotFound
	case endpoint.StatusInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
