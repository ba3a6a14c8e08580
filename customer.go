/*
Copyright 2024 Nellcorp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bankgate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/nellcorp/bankgate/database"
	"github.com/nellcorp/bankgate/model"
)

// RegisterCustomer creates a new customer in Pending status. Validation
// failures are accumulated and returned as a batch, not fail-fast.
func (g *Bankgate) RegisterCustomer(ctx context.Context, request model.CustomerRegistrationRequest) (result model.CustomerRegistrationResult) {
	_, span := tracer.Start(ctx, "Registering customer")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.CustomerRegistrationResult{
			Success:          false,
			Message:          fmt.Sprintf("Registration failed: %v", err),
			ValidationErrors: []string{err.Error()},
		}
	})

	validationErrors := validateRegistrationRequest(request)
	if len(validationErrors) > 0 {
		result.Message = "Registration validation failed."
		result.ValidationErrors = validationErrors
		return result
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		result.Message = fmt.Sprintf("Registration failed: %v", err)
		result.ValidationErrors = []string{err.Error()}
		return result
	}

	now := time.Now()
	profile := model.CustomerProfile{
		Username:    request.Username,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		DateOfBirth: request.DateOfBirth,
		Address:     request.Address,
		City:        request.City,
		State:       request.State,
		PostalCode:  request.PostalCode,
		Country:     request.Country,
		Status:      model.CustomerPending,
		CreatedAt:   now,
		LastLoginAt: now,
	}

	created, err := g.datasource.CreateCustomer(profile, string(digest))
	if err != nil {
		switch {
		case errors.Is(err, database.ErrUsernameTaken):
			result.Message = "Username is already taken."
		case errors.Is(err, database.ErrEmailTaken):
			result.Message = "Email is already registered."
		default:
			result.Message = fmt.Sprintf("Registration failed: %v", err)
		}
		result.ValidationErrors = []string{result.Message}
		return result
	}

	result.Success = true
	result.CustomerID = created.CustomerID
	result.Message = "Customer registered successfully. Account is pending activation."
	return result
}

// GetCustomerProfile returns the caller's own profile. The customer id must
// match the identity behind the token.
func (g *Bankgate) GetCustomerProfile(ctx context.Context, token, customerID string) (result model.CustomerProfileResult) {
	_, span := tracer.Start(ctx, "Fetching customer profile")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.CustomerProfileResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Failed to get customer profile: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.ErrorMessage = "Invalid authentication token"
		return result
	}
	if customer.CustomerID != customerID {
		result.ErrorMessage = "Access denied: Customer ID mismatch"
		return result
	}

	result.Success = true
	result.Customer = customer
	return result
}

// UpdateCustomerProfile updates the caller's contact fields. Identity fields
// (customer id, username, status) are never changed through this path.
func (g *Bankgate) UpdateCustomerProfile(ctx context.Context, token string, profile model.CustomerProfile) (result model.CustomerUpdateResult) {
	_, span := tracer.Start(ctx, "Updating customer profile")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.CustomerUpdateResult{
			Success:          false,
			Message:          fmt.Sprintf("Update failed: %v", err),
			ValidationErrors: []string{err.Error()},
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.Message = "Invalid authentication token"
		result.ValidationErrors = []string{"Invalid authentication token"}
		return result
	}

	if profile.CustomerID == "" {
		result.Message = "Customer ID is required."
		result.ValidationErrors = []string{"Customer ID is required."}
		return result
	}

	// A customer may only update their own record.
	if profile.CustomerID != customer.CustomerID {
		result.Message = "Access denied: Customer ID mismatch"
		result.ValidationErrors = []string{"Access denied: Customer ID mismatch"}
		return result
	}

	if err := g.datasource.UpdateCustomer(&profile); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			result.Message = "Customer not found."
			result.ValidationErrors = []string{"Customer not found."}
			return result
		}
		result.Message = fmt.Sprintf("Update failed: %v", err)
		result.ValidationErrors = []string{err.Error()}
		return result
	}

	result.Success = true
	result.Message = "Customer profile updated successfully."
	return result
}

// ChangePassword replaces the caller's password after verifying the current one.
func (g *Bankgate) ChangePassword(ctx context.Context, token string, passwordChange model.PasswordChangeRequest) (result model.PasswordChangeResult) {
	_, span := tracer.Start(ctx, "Changing customer password")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.PasswordChangeResult{
			Success: false,
			Message: fmt.Sprintf("Password change failed: %v", err),
		}
	})

	customer := g.getCustomerByToken(token)
	if customer == nil {
		result.Message = "Invalid authentication token"
		return result
	}

	if passwordChange.CurrentPassword == "" ||
		passwordChange.NewPassword == "" ||
		passwordChange.ConfirmPassword == "" {
		result.Message = "All password fields are required."
		return result
	}

	if passwordChange.NewPassword != passwordChange.ConfirmPassword {
		result.Message = "New password and confirmation password do not match."
		return result
	}

	if len(passwordChange.NewPassword) < 6 {
		result.Message = "New password must be at least 6 characters long."
		return result
	}

	digest, err := g.datasource.GetPasswordDigest(customer.CustomerID)
	if err != nil {
		result.Message = "Invalid customer ID."
		return result
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(passwordChange.CurrentPassword)); err != nil {
		result.Message = "Current password is incorrect."
		return result
	}

	newDigest, err := bcrypt.GenerateFromPassword([]byte(passwordChange.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		result.Message = fmt.Sprintf("Password change failed: %v", err)
		return result
	}
	if err := g.datasource.UpdatePasswordDigest(customer.CustomerID, string(newDigest)); err != nil {
		result.Message = fmt.Sprintf("Password change failed: %v", err)
		return result
	}

	result.Success = true
	result.Message = "Password changed successfully."
	return result
}

func validateRegistrationRequest(request model.CustomerRegistrationRequest) []string {
	var errs []string

	if len(request.Username) < 3 {
		errs = append(errs, "Username must be at least 3 characters long.")
	}
	if len(request.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters long.")
	}
	if request.FirstName == "" {
		errs = append(errs, "First name is required.")
	}
	if request.LastName == "" {
		errs = append(errs, "Last name is required.")
	}
	// EmailFormat is a pure syntax check; is.Email resolves MX records,
	// which would block the engine on DNS.
	if request.Email == "" || is.EmailFormat.Validate(request.Email) != nil {
		errs = append(errs, "Valid email address is required.")
	}
	if request.PhoneNumber == "" {
		errs = append(errs, "Phone number is required.")
	}
	if !request.DateOfBirth.Before(time.Now().AddDate(-18, 0, 0)) {
		errs = append(errs, "Customer must be at least 18 years old.")
	}
	if request.Address == "" {
		errs = append(errs, "Address is required.")
	}
	if request.City == "" {
		errs = append(errs, "City is required.")
	}
	if request.Country == "" {
		errs = append(errs, "Country is required.")
	}

	return errs
}
