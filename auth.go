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

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/nellcorp/bankgate/model"
)

// Login authenticates a customer by username and password and issues a
// session token. Unknown username and wrong password produce the same
// message so usernames cannot be enumerated.
func (g *Bankgate) Login(ctx context.Context, username, password string) (result model.LoginResult) {
	_, span := tracer.Start(ctx, "Authenticating customer")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.LoginResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("Login failed: %v", err),
			LoginTime:    time.Now(),
		}
	})

	result.LoginTime = time.Now()

	if username == "" || password == "" {
		result.ErrorMessage = "Username and password are required."
		return result
	}

	customer, err := g.datasource.GetCustomerByUsername(username)
	if err != nil {
		result.ErrorMessage = "Invalid username or password."
		return result
	}

	digest, err := g.datasource.GetPasswordDigest(customer.CustomerID)
	if err != nil {
		result.ErrorMessage = "Invalid username or password."
		return result
	}
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		result.ErrorMessage = "Invalid username or password."
		return result
	}

	if customer.Status != model.CustomerActive {
		result.ErrorMessage = "Account is not active. Please contact support."
		return result
	}

	token := model.GenerateUUIDWithPrefix("tok")
	if err := g.datasource.CreateSession(token, customer.CustomerID); err != nil {
		logrus.Errorf("create session error: %v", err)
		result.ErrorMessage = fmt.Sprintf("Login failed: %v", err)
		return result
	}

	now := time.Now()
	if err := g.datasource.TouchLastLogin(customer.CustomerID, now); err != nil {
		logrus.Warnf("touch last login error: %v", err)
	}
	customer.LastLoginAt = now

	result.Success = true
	result.Token = token
	result.Customer = customer
	result.ErrorMessage = ""
	return result
}

// Logout invalidates a session token. Logging out an absent token is reported
// as a failure, not a silent no-op.
func (g *Bankgate) Logout(ctx context.Context, token string) (result model.LogoutResult) {
	_, span := tracer.Start(ctx, "Ending customer session")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.LogoutResult{
			Success:    false,
			Message:    fmt.Sprintf("Logout failed: %v", err),
			LogoutTime: time.Now(),
		}
	})

	result.LogoutTime = time.Now()

	if token == "" {
		result.Message = "Token is required."
		return result
	}

	if err := g.datasource.DeleteSession(token); err != nil {
		result.Message = "Invalid or expired token."
		return result
	}

	result.Success = true
	result.Message = "Successfully logged out."
	return result
}

// ValidateToken checks whether a token maps to an active customer. A token
// for a customer that is no longer active is evicted on sight.
func (g *Bankgate) ValidateToken(ctx context.Context, token string) (result model.TokenValidationResult) {
	_, span := tracer.Start(ctx, "Validating session token")
	defer span.End()
	defer recoverOperation(span, func(err error) {
		result = model.TokenValidationResult{
			IsValid:        false,
			ErrorMessage:   fmt.Sprintf("Token validation failed: %v", err),
			ValidationTime: time.Now(),
		}
	})

	result.ValidationTime = time.Now()

	if token == "" {
		result.ErrorMessage = "Token is required."
		return result
	}

	customerID, err := g.datasource.GetSession(token)
	if err != nil {
		result.ErrorMessage = "Invalid or expired token."
		return result
	}

	customer, err := g.datasource.GetCustomerByID(customerID)
	if err != nil || customer.Status != model.CustomerActive {
		result.ErrorMessage = "Customer account is not active."
		if err := g.datasource.DeleteSession(token); err != nil {
			logrus.Warnf("evict session error: %v", err)
		}
		return result
	}

	result.IsValid = true
	result.Customer = customer
	return result
}

// getCustomerByToken resolves a token to its customer, or nil when the token
// is unknown. Status is not checked here; operations that need an active
// customer go through ValidateToken.
func (g *Bankgate) getCustomerByToken(token string) *model.CustomerProfile {
	if token == "" {
		return nil
	}
	customerID, err := g.datasource.GetSession(token)
	if err != nil {
		return nil
	}
	customer, err := g.datasource.GetCustomerByID(customerID)
	if err != nil {
		return nil
	}
	return customer
}
