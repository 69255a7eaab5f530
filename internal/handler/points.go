package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/big-trip/internal/api"
)

// ListPoints handles GET /points.
func (s *Server) ListPoints(w http.ResponseWriter, r *http.Request) {
	points, err := s.points.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	out := make([]api.Point, len(points))
	for i, p := range points {
		out[i] = api.FromPoint(p)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreatePoint handles POST /points.
func (s *Server) CreatePoint(w http.ResponseWriter, r *http.Request) {
	var body api.Point
	if status, err := decodeBody(r, &body); err != nil {
		writeJSON(w, status, requestBody(err.Error()))
		return
	}

	created, err := s.points.Create(r.Context(), body.Domain())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, api.FromPoint(created))
}

// UpdatePoint handles PUT /points/{pointId}.
func (s *Server) UpdatePoint(w http.ResponseWriter, r *http.Request) {
	id, ok := pointID(w, r)
	if !ok {
		return
	}
	var body api.Point
	if status, err := decodeBody(r, &body); err != nil {
		writeJSON(w, status, requestBody(err.Error()))
		return
	}

	updated, err := s.points.Update(r.Context(), id, body.Domain())
	if err != nil {
		s.writeServiceError(w, r, err, "point not found")
		return
	}
	writeJSON(w, http.StatusOK, api.FromPoint(updated))
}

// DeletePoint handles DELETE /points/{pointId}.
func (s *Server) DeletePoint(w http.ResponseWriter, r *http.Request) {
	id, ok := pointID(w, r)
	if !ok {
		return
	}
	if err := s.points.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "point not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pointID binds the {pointId} path parameter, answering 400 when it is not a uuid.
func pointID(w http.ResponseWriter, r *http.Request) (openapi_types.UUID, bool) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "pointId", chi.URLParam(r, "pointId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid pointId: "+err.Error()))
		return id, false
	}
	return id, true
}
