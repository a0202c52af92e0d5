package domain

import (
	"strings"
	"time"
)

// Client is a customer record. Email is unique across all clients and
// CreatedBy never changes after creation.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientFields holds the mutable business fields of a client.
type ClientFields struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Apply replaces the business fields with f.
func (c *Client) Apply(f ClientFields) {
	c.Name = f.Name
	c.Email = f.Email
	c.Phone = f.Phone
	c.Address = f.Address
}

// Validate checks the stored-shape invariants of a client.
func (c *Client) Validate() error {
	ve := &ValidationError{}
	requireText(ve, "name", c.Name, "Client name is required")
	requireText(ve, "email", c.Email, "Client email is required")
	requireText(ve, "phone", c.Phone, "Client phone is required")
	requireText(ve, "address", c.Address, "Client address is required")
	if c.CreatedBy == "" {
		ve.Add("createdBy", "required", "Creator is required")
	}
	return ve.ErrOrNil()
}

// ClientRef is the populated view of a client embedded in a project.
type ClientRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func requireText(ve *ValidationError, field, v, msg string) {
	if strings.TrimSpace(v) == "" {
		ve.Add(field, "required", msg)
	}
}
