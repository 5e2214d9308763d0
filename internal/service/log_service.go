package service

import (
	"errors"

	"solar-catalog-be/internal/dto"
	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
)

type ILogService interface {
	List(level string, limit, offset int) (*dto.LogListResponse, error)
	Show(id string) (*dto.LogEntryResponse, error)
}

type logService struct {
	reader logger.LogReader
}

func NewLogService(reader logger.LogReader) ILogService {
	return &logService{reader: reader}
}

func (s *logService) List(level string, limit, offset int) (*dto.LogListResponse, error) {
	limit, offset = NormalizePage(limit, offset)

	entries, err := s.reader.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	logs := make([]dto.LogEntryResponse, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, toLogEntryResponse(e))
	}
	return &dto.LogListResponse{Logs: logs, Limit: limit, Offset: offset}, nil
}

func (s *logService) Show(id string) (*dto.LogEntryResponse, error) {
	entry, err := s.reader.GetLogById(id)
	if err != nil {
		if errors.Is(err, logger.ErrLogNotFound) {
			return nil, serverutils.NotFound("Log entry not found")
		}
		return nil, err
	}
	res := toLogEntryResponse(*entry)
	return &res, nil
}

func toLogEntryResponse(e logger.LogEntry) dto.LogEntryResponse {
	return dto.LogEntryResponse{
		Id:        e.Id,
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Message:   e.Message,
		Module:    e.Module,
		Details:   e.Details,
	}
}
