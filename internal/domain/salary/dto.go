package salary

import (
	"time"
)

// Monetary values are rendered with two decimals, overtime hours with one.

type DailyEntryResponse struct {
	Date         string `json:"date"`
	InTime       string `json:"in_time"`
	OutTime      string `json:"out_time"`
	WorkingHours string `json:"working_hours"`
	OTHours      string `json:"ot_hours"`
	SalaryType   string `json:"salary_type"`
	DaySalary    string `json:"day_salary"`
	OTSalary     string `json:"ot_salary"`
}

type SalaryRecordResponse struct {
	ID              string               `json:"id"`
	EmployeeID      string               `json:"employee_id"`
	Month           string               `json:"month"`
	Name            string               `json:"name"`
	Entries         []DailyEntryResponse `json:"entries"`
	TotalBaseSalary string               `json:"total_base_salary"`
	TotalOTSalary   string               `json:"total_ot_salary"`
	GrossSalary     string               `json:"gross_salary"`
	NetSalary       string               `json:"net_salary"`
	CreatedAt       string               `json:"created_at"`
}

type MonthSummaryResponse struct {
	Month           string `json:"month"`
	TotalEmployees  int    `json:"total_employees"`
	TotalEntries    int    `json:"total_entries"`
	TotalBaseSalary string `json:"total_base_salary"`
	TotalOTSalary   string `json:"total_ot_salary"`
	TotalGross      string `json:"total_gross_salary"`
	TotalNet        string `json:"total_net_salary"`
}

func ToRecordResponse(r SalaryRecord) SalaryRecordResponse {
	entries := make([]DailyEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, DailyEntryResponse{
			Date:         e.Date.Format("2006-01-02"),
			InTime:       e.InTime,
			OutTime:      e.OutTime,
			WorkingHours: e.WorkingHours.String(),
			OTHours:      e.OTHours.StringFixed(1),
			SalaryType:   string(e.SalaryType),
			DaySalary:    e.DaySalary.StringFixed(2),
			OTSalary:     e.OTSalary.StringFixed(2),
		})
	}

	return SalaryRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Month:           r.Month,
		Name:            r.Name,
		Entries:         entries,
		TotalBaseSalary: r.TotalBaseSalary.StringFixed(2),
		TotalOTSalary:   r.TotalOTSalary.StringFixed(2),
		GrossSalary:     r.GrossSalary.StringFixed(2),
		NetSalary:       r.NetSalary.StringFixed(2),
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRecordResponses(records []SalaryRecord) []SalaryRecordResponse {
	result := make([]SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToRecordResponse(r))
	}
	return result
}

func ToSummaryResponse(s MonthSummary) MonthSummaryResponse {
	return MonthSummaryResponse{
		Month:           s.Month,
		TotalEmployees:  s.TotalEmployees,
		TotalEntries:    s.TotalEntries,
		TotalBaseSalary: s.TotalBaseSalary.StringFixed(2),
		TotalOTSalary:   s.TotalOTSalary.StringFixed(2),
		TotalGross:      s.TotalGross.StringFixed(2),
		TotalNet:        s.TotalNet.StringFixed(2),
	}
}
