package validation

import (
	"strings"

	"taskboard/internal/adapter/http/dto"
	"taskboard/internal/core/domain"
)

func BuildCreateProjectInput(body []byte) (domain.CreateProjectInput, error) {
	var req dto.ProjectRequest
	if _, err := Decode(SchemaProjectCreate, body, &req); err != nil {
		return domain.CreateProjectInput{}, err
	}
	return domain.CreateProjectInput{
		Title:       trimmed(req.Title),
		Description: req.Description,
	}, nil
}

func BuildUpdateProjectInput(body []byte) (domain.UpdateProjectInput, error) {
	var req dto.ProjectRequest
	raw, err := Decode(SchemaProjectUpdate, body, &req)
	if err != nil {
		return domain.UpdateProjectInput{}, err
	}

	var title *string
	if req.Title != nil {
		value := trimmed(req.Title)
		title = &value
	}
	return domain.UpdateProjectInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
	}, nil
}

func BuildReplaceProjectInput(body []byte) (domain.ReplaceProjectInput, error) {
	var req dto.ProjectRequest
	if _, err := Decode(SchemaProjectReplace, body, &req); err != nil {
		return domain.ReplaceProjectInput{}, err
	}
	return domain.ReplaceProjectInput{
		Title:       trimmed(req.Title),
		Description: req.Description,
	}, nil
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
