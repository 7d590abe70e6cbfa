package customer_test

import (
	"testing"
	"time"

	"customer-service/internal/domain/customer"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomer(t *testing.T) {
	name := "Alice Wonderland"
	address := "123 Rabbit Hole Lane"
	email := "alice@wonderland.example"
	phoneNumber := "+62-811-000-1234"
	memberSince := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	timeBefore := time.Now()

	cust := customer.NewCustomer(name, address, email, phoneNumber, memberSince, "")
	timeAfter := time.Now()

	assert.NotNil(t, cust, "NewCustomer should return a non-nil customer")

	assert.Equal(t, name, cust.Name, "Customer name should match input")
	assert.Equal(t, address, cust.Address, "Customer address should match input")
	assert.Equal(t, email, cust.Email, "Customer email should match input")
	assert.Equal(t, phoneNumber, cust.PhoneNumber, "Customer phone number should match input")
	assert.Equal(t, memberSince, cust.MemberSince, "Customer membership date should match input")
	assert.Equal(t, customer.StatusActive, cust.Status, "Blank status should default to active")

	assert.False(t, cust.CreatedAt.IsZero(), "CreatedAt should be set")
	assert.False(t, cust.UpdatedAt.IsZero(), "UpdatedAt should be set")
	assert.Equal(t, cust.CreatedAt, cust.UpdatedAt, "CreatedAt and UpdatedAt should initially be the same")

	assert.True(t, !cust.CreatedAt.Before(timeBefore) && !cust.CreatedAt.After(timeAfter), "CreatedAt should be around the time of creation")
	assert.True(t, !cust.UpdatedAt.Before(timeBefore) && !cust.UpdatedAt.After(timeAfter), "UpdatedAt should be around the time of creation")

	assert.Equal(t, int64(0), cust.CustomerID, "CustomerID should be initialized to 0")
}

func TestNewCustomer_ExplicitStatus(t *testing.T) {
	memberSince := time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)

	cust := customer.NewCustomer("Bob The Builder", "Fixit Town", "bob@fixit.example", "555-0101", memberSince, "pending")

	assert.Equal(t, "pending", cust.Status, "Explicit status should be kept as provided")
}

func TestCustomer_Replace(t *testing.T) {
	memberSince := time.Date(2022, time.January, 2, 0, 0, 0, 0, time.UTC)
	cust := customer.NewCustomer("Charlie Chaplin", "Hollywood", "charlie@silent.example", "555-0102", memberSince, "")
	cust.CustomerID = 42
	initialCreateTime := cust.CreatedAt
	initialUpdateTime := cust.UpdatedAt

	newMemberSince := time.Date(2023, time.May, 20, 0, 0, 0, 0, time.UTC)
	time.Sleep(1 * time.Millisecond)

	cust.Replace("Charles Chaplin", "Switzerland", "charles@talkies.example", "555-0202", newMemberSince, "inactive")

	assert.Equal(t, int64(42), cust.CustomerID, "CustomerID should not change on replace")
	assert.Equal(t, "Charles Chaplin", cust.Name, "Name should be replaced")
	assert.Equal(t, "Switzerland", cust.Address, "Address should be replaced")
	assert.Equal(t, "charles@talkies.example", cust.Email, "Email should be replaced")
	assert.Equal(t, "555-0202", cust.PhoneNumber, "Phone number should be replaced")
	assert.Equal(t, newMemberSince, cust.MemberSince, "Membership date should be replaced")
	assert.Equal(t, "inactive", cust.Status, "Status should be replaced")
	assert.Equal(t, initialCreateTime, cust.CreatedAt, "CreatedAt should not change on replace")
	assert.True(t, cust.UpdatedAt.After(initialUpdateTime), "UpdatedAt should be updated after replace")
}

func TestCustomer_Replace_BlankStatusDefaults(t *testing.T) {
	memberSince := time.Date(2021, time.November, 9, 0, 0, 0, 0, time.UTC)
	cust := customer.NewCustomer("Diana Prince", "Themyscira", "diana@amazon.example", "555-0103", memberSince, "suspended")

	cust.Replace("Diana Prince", "Themyscira", "diana@amazon.example", "555-0103", memberSince, "")

	assert.Equal(t, customer.StatusActive, cust.Status, "Blank status on replace should default to active")
}

func TestCustomer_Suspend(t *testing.T) {
	t.Run("Suspend an active customer", func(t *testing.T) {
		memberSince := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		cust := customer.NewCustomer("Gandalf Grey", "Middle Earth", "gandalf@istari.example", "555-0104", memberSince, "")
		initialUpdateTime := cust.UpdatedAt
		assert.Equal(t, customer.StatusActive, cust.Status, "Customer should initially be active")

		time.Sleep(1 * time.Millisecond)
		cust.Suspend()

		assert.Equal(t, customer.StatusSuspended, cust.Status, "Customer should now be suspended")
		assert.True(t, cust.UpdatedAt.After(initialUpdateTime), "UpdatedAt should be updated")
	})

	t.Run("Suspend an already suspended customer", func(t *testing.T) {
		memberSince := time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)
		cust := customer.NewCustomer("Harry Potter", "Privet Drive", "harry@hogwarts.example", "555-0105", memberSince, customer.StatusSuspended)
		initialUpdateTime := time.Now()
		cust.UpdatedAt = initialUpdateTime

		time.Sleep(1 * time.Millisecond)
		cust.Suspend()

		assert.Equal(t, customer.StatusSuspended, cust.Status, "Customer should remain suspended")

		assert.Equal(t, initialUpdateTime, cust.UpdatedAt, "UpdatedAt should NOT be updated")
	})
}
