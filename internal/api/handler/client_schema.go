package handler

import "github.com/workcity/project-tracker/internal/core/domain"

// clientRequest is the body of POST and PUT /api/clients.
type clientRequest struct {
	Name    string `json:"name"    validate:"required"       msg:"Client name is required"`
	Email   string `json:"email"   validate:"required,email" msg:"Please include a valid client email"`
	Phone   string `json:"phone"   validate:"required"       msg:"Client phone number is required"`
	Address string `json:"address" validate:"required"       msg:"Client address is required"`
}

func (r clientRequest) sanitized() clientRequest {
	return clientRequest{
		Name:    clean(r.Name),
		Email:   normalizeEmail(r.Email),
		Phone:   clean(r.Phone),
		Address: clean(r.Address),
	}
}

func (r clientRequest) fields() domain.ClientFields {
	return domain.ClientFields{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
