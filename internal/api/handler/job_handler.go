package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jobboard/internal/api/middleware"
	"jobboard/internal/app/service"
	"jobboard/internal/common"
	"jobboard/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobService *service.JobService
	auth       *middleware.Authenticator
}

func NewJobHandler(jobService *service.JobService, auth *middleware.Authenticator) *JobHandler {
	return &JobHandler{jobService: jobService, auth: auth}
}

func (h *JobHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listJobs)            // GET /api/v1/jobs
	r.Get("/latest", h.latestJobs)    // GET /api/v1/jobs/latest
	r.Get("/{jobSlug}", h.getJob)     // GET /api/v1/jobs/backend-developer

	r.Group(func(protected chi.Router) {
		protected.Use(h.auth.RequireAuth)
		protected.Post("/", h.postJob) // POST /api/v1/jobs, recruiters only
	})
}

func (h *JobHandler) postJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.PostJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	job, err := h.jobService.PostJob(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, jobResponse{
		Message: "New job created successfully",
		Job:     job,
		Success: true,
	})
}

type jobResponse struct {
	Message string     `json:"message"`
	Job     *model.Job `json:"job"`
	Success bool       `json:"success"`
}

type paginatedJobsResponse struct {
	Jobs     []model.Job `json:"jobs"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Success  bool        `json:"success"`
}

func (h *JobHandler) listJobs(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	jobs, total, err := h.jobService.ListJobs(r.Context(), keyword, page, pageSize)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, paginatedJobsResponse{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Success:  true,
	})
}

type jobsResponse struct {
	Jobs    []model.Job `json:"jobs"`
	Success bool        `json:"success"`
}

func (h *JobHandler) latestJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.LatestJobs(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, jobsResponse{Jobs: jobs, Success: true})
}

func (h *JobHandler) getJob(w http.ResponseWriter, r *http.Request) {
	jobSlug := chi.URLParam(r, "jobSlug")

	job, err := h.jobService.GetJob(r.Context(), jobSlug)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, jobResponse{Job: job, Success: true})
}
