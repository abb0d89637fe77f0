package partner

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/utilibill/backend/internal/domain/shared"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer is an account holder with one or more metered connections
type Customer struct {
	shared.BaseEntity
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomer creates a customer account
func NewCustomer(name, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer email is not valid")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
	}, nil
}

// UpdateContact changes the customer's contact email
func (c *Customer) UpdateContact(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_CUSTOMER", "Customer email is not valid")
	}
	c.Email = email
	c.UpdatedAt = time.Now()
	return nil
}

// CustomerRepository persists customers
type CustomerRepository interface {
	Insert(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}
