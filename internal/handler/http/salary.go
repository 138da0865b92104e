package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/salary"
	"github.com/cmlabs-hris/backoffice-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

// monthParam reads ?month=, falling back to the current payroll month.
func (h *salaryHandlerImpl) monthParam(r *http.Request) (salary.Month, error) {
	label := strings.TrimSpace(r.URL.Query().Get("month"))
	if label == "" {
		return h.salaryService.CurrentMonth(), nil
	}
	return salary.ParseMonth(label)
}

// Calculate recomputes every employee's salary for the month.
func (h *salaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.Calculate(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.ListSalaries(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.GetSalary(r.Context(), chi.URLParam(r, "employeeId"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.salaryService.GetMonthSummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	month, err := h.monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.salaryService.ExportMonth(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := "salaries-" + strings.ReplaceAll(strings.ToLower(month.Label()), " ", "-") + ".xlsx"
	response.File(w, filename, xlsxContentType, data)
}
