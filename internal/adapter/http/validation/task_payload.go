package validation

import (
	"encoding/json"
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func BuildCreateTaskInput(body []byte) (domain.CreateTaskInput, error) {
	var req dto.CreateTaskRequest
	if _, err := Decode(SchemaTaskCreate, body, &req); err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}, nil
}

// BuildUpdateTaskInput decodes a partial task update. Nullable fields sent
// as null are reported as set with a nil value.
func BuildUpdateTaskInput(body []byte) (domain.UpdateTaskInput, error) {
	var req dto.UpdateTaskRequest
	raw, err := Decode(SchemaTaskUpdate, body, &req)
	if err != nil {
		return domain.UpdateTaskInput{}, err
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		title = &value
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Status:         status,
		AssignedTo:     req.AssignedTo,
		AssignedToSet:  hasJSONField(raw, "assigned_to"),
		LinkedTo:       req.LinkedTo,
		LinkedToSet:    hasJSONField(raw, "linked_to"),
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
