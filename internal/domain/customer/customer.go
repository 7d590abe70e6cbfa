package customer

import "time"

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type Customer struct {
	CustomerID  int64     `json:"customerId"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	MemberSince time.Time `json:"memberSince"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewCustomer(name, address, email, phoneNumber string, memberSince time.Time, status string) *Customer {
	if status == "" {
		status = StatusActive
	}
	now := time.Now()
	return &Customer{
		Name:        name,
		Address:     address,
		Email:       email,
		PhoneNumber: phoneNumber,
		MemberSince: memberSince,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Replace overwrites every client-settable attribute in one step. The
// identifier and creation timestamp are never touched.
func (c *Customer) Replace(name, address, email, phoneNumber string, memberSince time.Time, status string) {
	if status == "" {
		status = StatusActive
	}
	c.Name = name
	c.Address = address
	c.Email = email
	c.PhoneNumber = phoneNumber
	c.MemberSince = memberSince
	c.Status = status
	c.UpdatedAt = time.Now()
}

func (c *Customer) Suspend() {
	if c.Status != StatusSuspended {
		c.Status = StatusSuspended
		c.UpdatedAt = time.Now()
	}
}
