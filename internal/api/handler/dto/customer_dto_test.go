package dto

import (
	"testing"
	"time"

	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
)

const (
	validRequest = "Valid request"
)

func validCustomerRequest() CustomerRequest {
	return CustomerRequest{
		Name:        "John Doe",
		Address:     "123 Main St",
		Email:       "john.doe@example.com",
		PhoneNumber: "555-0100",
		MemberSince: "2024-03-01",
		Status:      "active",
	}
}

func TestCustomerRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *CustomerRequest)
		wantField string
	}{
		{validRequest, func(r *CustomerRequest) {}, ""},
		{"Empty name", func(r *CustomerRequest) { r.Name = "" }, "name"},
		{"Empty address", func(r *CustomerRequest) { r.Address = "" }, "address"},
		{"Empty email", func(r *CustomerRequest) { r.Email = "" }, "email"},
		{"Empty phone number", func(r *CustomerRequest) { r.PhoneNumber = "" }, "phone_number"},
		{"Empty member since", func(r *CustomerRequest) { r.MemberSince = "" }, "member_since"},
		{"Malformed member since", func(r *CustomerRequest) { r.MemberSince = "01-03-2024" }, "member_since"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validCustomerRequest()
			tt.mutate(&request)

			err := request.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestCustomerRequestValidateAllowsBlankStatus(t *testing.T) {
	request := validCustomerRequest()
	request.Status = ""

	err := request.Validate()
	assert.NoError(t, err)
}

func TestCustomerRequestToAttributes(t *testing.T) {
	request := validCustomerRequest()

	attrs, err := request.ToAttributes()
	assert.NoError(t, err)
	assert.Equal(t, request.Name, attrs.Name)
	assert.Equal(t, request.Address, attrs.Address)
	assert.Equal(t, request.Email, attrs.Email)
	assert.Equal(t, request.PhoneNumber, attrs.PhoneNumber)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), attrs.MemberSince)
	assert.Equal(t, request.Status, attrs.Status)
}

func TestCustomerRequestToAttributesRejectsBadDate(t *testing.T) {
	request := validCustomerRequest()
	request.MemberSince = "not-a-date"

	_, err := request.ToAttributes()
	assert.Error(t, err)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "member_since", validationErr.Field)
}

func TestNewCustomerResponse(t *testing.T) {
	cust := &customer.Customer{
		CustomerID:  1,
		Name:        "John Doe",
		Address:     "123 Main St",
		Email:       "john.doe@example.com",
		PhoneNumber: "555-0100",
		MemberSince: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:      customer.StatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	resp := NewCustomerResponse(cust)
	assert.Equal(t, cust.CustomerID, resp.ID)
	assert.Equal(t, cust.Name, resp.Name)
	assert.Equal(t, cust.Address, resp.Address)
	assert.Equal(t, cust.Email, resp.Email)
	assert.Equal(t, cust.PhoneNumber, resp.PhoneNumber)
	assert.Equal(t, "2024-03-01", resp.MemberSince)
	assert.Equal(t, cust.Status, resp.Status)

	resp = NewCustomerResponse(nil)
	assert.Equal(t, CustomerResponse{}, resp)
}

func TestNewCustomerListResponse(t *testing.T) {
	t.Run("maps every customer", func(t *testing.T) {
		customers := []*customer.Customer{
			{CustomerID: 1, Name: "John Doe", MemberSince: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{CustomerID: 2, Name: "Jane Doe", MemberSince: time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)},
		}

		resp := NewCustomerListResponse(customers)
		assert.Len(t, resp, 2)
		assert.Equal(t, int64(1), resp[0].ID)
		assert.Equal(t, "2023-07-15", resp[1].MemberSince)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		resp := NewCustomerListResponse(nil)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}
