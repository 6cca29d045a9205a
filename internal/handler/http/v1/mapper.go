package v1

import (
	"github.com/shenikar/road_risk_advisor/internal/advisory"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// DTOToFilters преобразует DTO фильтров в доменную модель
func DTOToFilters(dto FilterRequest) models.Filters {
	return models.Filters{
		Car:        dto.Car,
		Bike:       dto.Bike,
		Pedestrian: dto.Pedestrian,
		Fatal:      dto.Fatal,
		Serious:    dto.Serious,
		Minor:      dto.Minor,
		StartYear:  dto.StartYear,
		EndYear:    dto.EndYear,
	}
}

func DTOToPosition(dto PositionDTO) models.Position {
	return models.Position{Lat: dto.Lat, Lng: dto.Lng}
}

// ModelToRecordResponse добавляет к записи отображаемое название тяжести
func ModelToRecordResponse(model models.IncidentRecord) RecordResponse {
	return RecordResponse{
		IncidentRecord: model,
		SeverityLabel:  models.SeverityLabel(model.Severity),
	}
}

// ModelsToRecordResponses преобразует слайс моделей в слайс DTO
func ModelsToRecordResponses(records []models.IncidentRecord) []RecordResponse {
	responses := make([]RecordResponse, len(records))
	for i, r := range records {
		responses[i] = ModelToRecordResponse(r)
	}
	return responses
}

func ReportToAdvisoryResponse(report advisory.Report) AdvisoryResponse {
	return AdvisoryResponse{
		Total:       report.Total,
		Recent:      report.Recent,
		AverageRisk: report.AverageRisk,
		PeakRisk:    report.PeakRisk,
		Items:       report.Items,
	}
}

func StatusToResponse(status models.ImportStatus) ImportStatusResponse {
	resp := ImportStatusResponse{
		JobID:       status.ID,
		Status:      status.Status,
		Source:      status.Outcome.Source,
		Accepted:    status.Outcome.Accepted,
		Rejected:    status.Outcome.Rejected,
		Inserted:    status.Outcome.Inserted,
		Error:       status.Error,
		SubmittedAt: status.SubmittedAt,
	}
	if !status.FinishedAt.IsZero() {
		finished := status.FinishedAt
		resp.FinishedAt = &finished
	}
	return resp
}
