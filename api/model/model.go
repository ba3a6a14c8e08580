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
package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"github.com/nellcorp/bankgate/model"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) ValidateLoginRequest() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

type RegisterCustomer struct {
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postal_code"`
	Country     string    `json:"country"`
}

func (r *RegisterCustomer) ValidateRegisterCustomer() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.DateOfBirth, validation.Required),
	)
}

func (r *RegisterCustomer) ToRegistrationRequest() model.CustomerRegistrationRequest {
	return model.CustomerRegistrationRequest{
		Username:    r.Username,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
	}
}

type UpdateCustomerProfile struct {
	CustomerID  string `json:"customer_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
}

func (r *UpdateCustomerProfile) ValidateUpdateCustomerProfile() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomerID, validation.Required),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
	)
}

func (r *UpdateCustomerProfile) ToProfile() model.CustomerProfile {
	return model.CustomerProfile{
		CustomerID:  r.CustomerID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		Country:     r.Country,
	}
}

type ChangePassword struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ChangePassword) ValidateChangePassword() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CurrentPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
}

func (r *ChangePassword) ToPasswordChangeRequest() model.PasswordChangeRequest {
	return model.PasswordChangeRequest{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type TransferMoney struct {
	FromAccountNumber string          `json:"from_account_number"`
	ToAccountNumber   string          `json:"to_account_number"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	ReferenceNumber   string          `json:"reference_number"`
}

func (r *TransferMoney) ValidateTransferMoney() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FromAccountNumber, validation.Required),
		validation.Field(&r.ToAccountNumber, validation.Required),
	)
}

func (r *TransferMoney) ToTransferRequest() model.TransferRequest {
	return model.TransferRequest{
		FromAccountNumber: r.FromAccountNumber,
		ToAccountNumber:   r.ToAccountNumber,
		Amount:            r.Amount,
		Description:       r.Description,
		ReferenceNumber:   r.ReferenceNumber,
	}
}

type PayBill struct {
	FromAccountNumber string          `json:"from_account_number"`
	BillerID          string          `json:"biller_id"`
	AccountNumber     string          `json:"account_number"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	ReferenceNumber   string          `json:"reference_number"`
}

func (r *PayBill) ValidatePayBill() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FromAccountNumber, validation.Required),
		validation.Field(&r.BillerID, validation.Required),
	)
}

func (r *PayBill) ToBillPaymentRequest() model.BillPaymentRequest {
	return model.BillPaymentRequest{
		FromAccountNumber: r.FromAccountNumber,
		BillerID:          r.BillerID,
		AccountNumber:     r.AccountNumber,
		Amount:            r.Amount,
		Description:       r.Description,
		ReferenceNumber:   r.ReferenceNumber,
	}
}
