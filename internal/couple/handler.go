package couple

import (
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Request(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[RequestDTO](r.Context())

	rel, err := h.service.Request(r.Context(), scope.UserID, dto.PartnerEmail)
	if err != nil {
		apperr.Write(w, err, "could not send the connection request")
		return
	}
	config.JSON(w, http.StatusCreated, ActionResponse{Message: "connection request sent successfully", Relationship: rel})
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rel, err := h.service.Accept(r.Context(), validation.ParamID(r, "id"), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not accept the request")
		return
	}
	config.JSON(w, http.StatusOK, ActionResponse{Message: "request accepted successfully", Relationship: rel})
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Reject(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not reject the request")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rels, err := h.service.List(r.Context(), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch couple relationships")
		return
	}
	config.JSON(w, http.StatusOK, rels)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not delete the relationship")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
