package validation

import (
	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

// BuildCreateTaskInput passes fields through untouched; trimming and defaults belong to the task service.
func BuildCreateTaskInput(req dto.CreateTaskRequest) domain.CreateTaskInput {
	return domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) domain.UpdateTaskInput {
	return domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
}
