package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

// MemberSinceLayout is the wire format for the member_since attribute.
const MemberSinceLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CustomerRequest is the payload for POST /customers and PUT /customers/{id}.
// A client-supplied id is accepted but ignored; identifiers come from the
// URL path or are assigned by the store.
type CustomerRequest struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	MemberSince string `json:"member_since" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status"`
}

func (r *CustomerRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		return apperrors.NewValidationError(fe.Field(), validationMessage(fe))
	}
	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return "must be a valid date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}

// ToAttributes converts the validated payload into domain attributes.
func (r *CustomerRequest) ToAttributes() (customer.CustomerAttributes, error) {
	memberSince, err := time.Parse(MemberSinceLayout, r.MemberSince)
	if err != nil {
		return customer.CustomerAttributes{}, apperrors.NewValidationError("member_since", "must be a valid date in YYYY-MM-DD format")
	}

	return customer.CustomerAttributes{
		Name:        r.Name,
		Address:     r.Address,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		MemberSince: memberSince,
		Status:      r.Status,
	}, nil
}

type CustomerResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	MemberSince string `json:"member_since"`
	Status      string `json:"status"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	return CustomerResponse{
		ID:          cust.CustomerID,
		Name:        cust.Name,
		Address:     cust.Address,
		Email:       cust.Email,
		PhoneNumber: cust.PhoneNumber,
		MemberSince: cust.MemberSince.Format(MemberSinceLayout),
		Status:      cust.Status,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		responses = append(responses, NewCustomerResponse(cust))
	}
	return responses
}

type ServiceInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
