package httpv1

import "github.com/Egor213/LogiWatch/internal/domain"

type (
	SelectPathRequest struct {
		Path string `json:"path"`
	}

	BufferRequest struct {
		Capacity int `json:"capacity"`
	}

	VisibilityRequest struct {
		Visible bool `json:"visible"`
	}

	AlertsQuery struct {
		Severity string `query:"severity"`
		Kind     string `query:"kind"`
		Read     string `query:"read"`
	}

	LoadResponse struct {
		Loaded int `json:"loaded"`
	}

	StatusResponse struct {
		Status string `json:"status"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}

	LogsResponse struct {
		Count int                `json:"count"`
		Logs  []domain.LogRecord `json:"logs"`
	}

	AlertsResponse struct {
		Count  int            `json:"count"`
		Alerts []domain.Alert `json:"alerts"`
	}
)

func NewLogsResponse(records []domain.LogRecord) LogsResponse {
	if records == nil {
		records = []domain.LogRecord{}
	}
	return LogsResponse{Count: len(records), Logs: records}
}

func NewAlertsResponse(alerts []domain.Alert) AlertsResponse {
	if alerts == nil {
		alerts = []domain.Alert{}
	}
	return AlertsResponse{Count: len(alerts), Alerts: alerts}
}
