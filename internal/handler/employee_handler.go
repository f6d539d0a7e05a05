package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-directory-api/internal/domain"
	"github.com/employee-directory-api/internal/dto"
	"github.com/employee-directory-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := h.parseListQuery(r)

	employees, total, err := h.empService.List(r.Context(), &query)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	results := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		results[i] = h.toEmployeeResponse(&employees[i])
	}

	resp := dto.PaginatedEmployeesResponse{
		Count:   total,
		Results: results,
	}
	if int64(query.Page*query.PageSize) < total {
		resp.Next = h.pageLink(r, query.Page+1)
	}
	if query.Page > 1 {
		resp.Previous = h.pageLink(r, query.Page-1)
	}

	respondJSON(h.logger, w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(h.logger, w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusCreated, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondDetail(h.logger, w, http.StatusNotFound, "Not found.")
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toEmployeeResponse(emp))
}

// Update обрабатывает и полное (PUT), и частичное (PATCH) обновление
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, partial bool) {
	id, err := h.extractID(r)
	if err != nil {
		respondDetail(h.logger, w, http.StatusNotFound, "Not found.")
		return
	}

	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondDetail(h.logger, w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req, partial)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, h.toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		respondDetail(h.logger, w, http.StatusNotFound, "Not found.")
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/employees/")
	path = strings.Trim(path, "/")

	if path == "" {
		return 0, errors.New("id is required")
	}

	return strconv.ParseInt(path, 10, 64)
}

func (h *EmployeeHandler) parseListQuery(r *http.Request) dto.ListEmployeesQuery {
	values := r.URL.Query()

	query := dto.ListEmployeesQuery{
		Department: values.Get("department"),
		Role:       values.Get("role"),
		Search:     values.Get("search"),
		Ordering:   values.Get("ordering"),
		Page:       1,
		PageSize:   10,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			query.Page = page
		}
	}

	if sizeStr := values.Get("page_size"); sizeStr != "" {
		if size, err := strconv.Atoi(sizeStr); err == nil {
			if size > 100 {
				size = 100
			}
			query.PageSize = size
		}
	}

	return query
}

// pageLink строит абсолютную ссылку на страницу списка.
// Для первой страницы параметр page опускается.
func (h *EmployeeHandler) pageLink(r *http.Request, page int) *string {
	u := *r.URL
	values := u.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = values.Encode()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	link := scheme + "://" + r.Host + u.Path
	if u.RawQuery != "" {
		link += "?" + u.RawQuery
	}
	return &link
}

func (h *EmployeeHandler) toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:                emp.ID,
		Name:              emp.Name,
		Email:             emp.Email,
		DepartmentDisplay: "Not Assigned",
		RoleDisplay:       "Not Assigned",
		DateJoined:        emp.DateJoined.Format("2006-01-02"),
	}

	if emp.Department != nil {
		value := string(*emp.Department)
		resp.Department = &value
		resp.DepartmentDisplay = emp.Department.Label()
	}
	if emp.Role != nil {
		value := string(*emp.Role)
		resp.Role = &value
		resp.RoleDisplay = emp.Role.Label()
	}

	return resp
}

func (h *EmployeeHandler) handleServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondJSON(h.logger, w, http.StatusBadRequest, ve)
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondDetail(h.logger, w, http.StatusNotFound, "Employee not found.")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		respondDetail(h.logger, w, http.StatusInternalServerError, "A server error occurred.")
	}
}
