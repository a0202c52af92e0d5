package handler

import "github.com/workcity/project-tracker/internal/core/domain"

// projectRequest is the body of POST and PUT /api/projects. Status is
// optional; an omitted status defaults to "Not Started" on create and is
// left unchanged on update.
type projectRequest struct {
	Name        string `json:"name"        validate:"required"                                              msg:"Project name is required"`
	Description string `json:"description" validate:"required"                                              msg:"Project description is required"`
	Status      string `json:"status"      validate:"omitempty,oneof='Not Started' 'In Progress' 'Completed'" msg:"Status is invalid"`
	ClientID    string `json:"clientId"    validate:"required,objectid"                                     msg:"A valid client ID is required"`
}

func (r projectRequest) sanitized() projectRequest {
	return projectRequest{
		Name:        clean(r.Name),
		Description: clean(r.Description),
		Status:      r.Status,
		ClientID:    r.ClientID,
	}
}

func (r projectRequest) fields() domain.ProjectFields {
	return domain.ProjectFields{
		Name:        r.Name,
		Description: r.Description,
		Status:      domain.ProjectStatus(r.Status),
		ClientID:    r.ClientID,
	}
}
