package http

import (
	"net/http"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

type createReportRequest struct {
	ReportedUserID string `json:"reported_user_id"`
	ToolID         string `json:"tool_id"`
	Reason         string `json:"reason"`
	Description    string `json:"description"`
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req createReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report, err := h.reportSvc.CreateReport(r.Context(), uid,
		req.ReportedUserID, req.ToolID, req.Reason, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	status := domain.ReportStatus(r.URL.Query().Get("status"))
	reports, err := h.reportSvc.ListReports(r.Context(), uid, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := h.reportSvc.ResolveReport(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := h.reportSvc.DismissReport(r.Context(), uid, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
