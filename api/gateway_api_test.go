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

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nellcorp/bankgate/internal/request"

	"github.com/brianvoe/gofakeit/v6"
	model2 "github.com/nellcorp/bankgate/api/model"

	"github.com/nellcorp/bankgate/config"
	"github.com/nellcorp/bankgate/model"

	"github.com/nellcorp/bankgate"
	"github.com/nellcorp/bankgate/database"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestRequest struct {
	Payload  io.Reader
	Router   *gin.Engine
	Response interface{}
	Method   string
	Route    string
	Token    string
	Header   map[string]string
}

func SetUpTestRequest(s TestRequest) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(s.Method, s.Route, s.Payload)
	for key, value := range s.Header {
		req.Header.Set(key, value)
	}
	if s.Token != "" {
		req.Header.Set("X-Auth-Token", s.Token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	s.Router.ServeHTTP(resp, req)

	err := json.NewDecoder(resp.Body).Decode(&s.Response)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func setupRouter() (*gin.Engine, *bankgate.Bankgate, error) {
	config.MockConfig(&config.Configuration{
		ProjectName: "Bankgate Test",
		Pagination: config.PaginationConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	})

	db := database.NewMemoryStore()
	if err := bankgate.SeedDemoData(context.Background(), db); err != nil {
		return nil, nil, err
	}
	engine, err := bankgate.NewBankgate(db)
	if err != nil {
		return nil, nil, err
	}
	a, err := NewAPI(engine)
	if err != nil {
		return nil, nil, err
	}

	return a.Router(), engine, nil
}

func loginFor(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	payload, err := request.ToJsonReq(&model2.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	var response model.LoginResult
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  payload,
		Response: &response,
		Method:   "POST",
		Route:    "/login",
		Router:   router,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, response.Success, "login failed: %s", response.ErrorMessage)
	return response.Token
}

func TestLoginEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)

	tests := []struct {
		name         string
		payload      model2.LoginRequest
		expectedCode int
		wantSuccess  bool
	}{
		{
			name:         "Valid Credentials",
			payload:      model2.LoginRequest{Username: "admin", Password: "admin123"},
			expectedCode: http.StatusOK,
			wantSuccess:  true,
		},
		{
			name:         "Wrong Password",
			payload:      model2.LoginRequest{Username: "admin", Password: "nope"},
			expectedCode: http.StatusOK,
			wantSuccess:  false,
		},
		{
			name:         "Missing Password",
			payload:      model2.LoginRequest{Username: "admin"},
			expectedCode: http.StatusBadRequest,
			wantSuccess:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadBytes, _ := request.ToJsonReq(&tt.payload)
			var response model.LoginResult
			resp, err := SetUpTestRequest(TestRequest{
				Payload:  payloadBytes,
				Response: &response,
				Method:   "POST",
				Route:    "/login",
				Router:   router,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Equal(t, tt.wantSuccess, response.Success)
			if tt.wantSuccess {
				assert.NotEmpty(t, response.Token)
				assert.NotNil(t, response.Customer)
			}
		})
	}
}

func TestRegisterCustomerEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)

	payload := model2.RegisterCustomer{
		Username:    gofakeit.Username(),
		Password:    "secret123",
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Email:       gofakeit.Email(),
		PhoneNumber: gofakeit.Phone(),
		DateOfBirth: time.Now().AddDate(-30, 0, 0),
		Address:     gofakeit.Street(),
		City:        gofakeit.City(),
		State:       gofakeit.State(),
		PostalCode:  gofakeit.Zip(),
		Country:     "US",
	}
	payloadBytes, _ := request.ToJsonReq(&payload)

	var response model.CustomerRegistrationResult
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  payloadBytes,
		Response: &response,
		Method:   "POST",
		Route:    "/customers",
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, response.Success, "registration failed: %v", response.ValidationErrors)
	assert.Equal(t, "CUST003", response.CustomerID)
}

func TestTransferEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)
	token := loginFor(t, router, "customer", "customer123")

	payload := model2.TransferMoney{
		FromAccountNumber: "1003",
		ToAccountNumber:   "1004",
		Amount:            decimal.RequireFromString("100.00"),
		Description:       "rent split",
	}
	payloadBytes, _ := request.ToJsonReq(&payload)

	var response model.TransferResult
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  payloadBytes,
		Response: &response,
		Method:   "POST",
		Route:    "/transfers",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	require.True(t, response.Success, "transfer failed: %v", response.ValidationErrors)
	assert.Contains(t, response.TransactionID, "TXN")

	var balance model.AccountBalanceResult
	resp, err = SetUpTestRequest(TestRequest{
		Response: &balance,
		Method:   "GET",
		Route:    "/accounts/1003/balance",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString("24900.00")))

	var status model.TransferStatusResult
	resp, err = SetUpTestRequest(TestRequest{
		Response: &status,
		Method:   "GET",
		Route:    fmt.Sprintf("/transfers/%s", response.TransactionID),
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, status.Success)
	assert.Equal(t, "Transfer completed successfully.", status.StatusMessage)
}

func TestPayBillEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)
	token := loginFor(t, router, "admin", "admin123")

	payload := model2.PayBill{
		FromAccountNumber: "1001",
		BillerID:          "ELEC001",
		AccountNumber:     "METER-4521",
		Amount:            decimal.RequireFromString("50.00"),
	}
	payloadBytes, _ := request.ToJsonReq(&payload)

	var response model.BillPaymentResult
	resp, err := SetUpTestRequest(TestRequest{
		Payload:  payloadBytes,
		Response: &response,
		Method:   "POST",
		Route:    "/bill-payments",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	require.True(t, response.Success, "bill payment failed: %v", response.ValidationErrors)
	assert.Contains(t, response.TransactionID, "PAY")
}

func TestGetCustomerAccountsEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)
	token := loginFor(t, router, "admin", "admin123")

	var response model.AccountListResult
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   "GET",
		Route:    "/customers/CUST001/accounts",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, response.Success)
	assert.Len(t, response.Accounts, 2)

	var denied model.AccountListResult
	resp, err = SetUpTestRequest(TestRequest{
		Response: &denied,
		Method:   "GET",
		Route:    "/customers/CUST002/accounts",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, denied.Success)
	assert.Equal(t, "Access denied: Customer ID mismatch", denied.ErrorMessage)
}

func TestTransactionHistoryEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)
	token := loginFor(t, router, "admin", "admin123")

	var response model.TransactionHistoryResult
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   "GET",
		Route:    "/accounts/1001/transactions?page=1&page_size=10",
		Token:    token,
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, response.Success, "history failed: %s", response.ErrorMessage)
	assert.NotZero(t, response.TotalCount)
	assert.Equal(t, 1, response.PageNumber)
	assert.Equal(t, 10, response.PageSize)
}

func TestSystemStatusEndpoint(t *testing.T) {
	router, _, err := setupRouter()
	require.NoError(t, err)

	var response model.SystemStatusResult
	resp, err := SetUpTestRequest(TestRequest{
		Response: &response,
		Method:   "GET",
		Route:    "/status",
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, response.IsHealthy)
	assert.Equal(t, "Operational", response.Status)
}

func TestSecretKeyAuthGate(t *testing.T) {
	config.MockConfig(&config.Configuration{
		ProjectName: "Bankgate Test",
		Server:      config.ServerConfig{Secure: true, SecretKey: "super-secret"},
		Pagination: config.PaginationConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	})

	db := database.NewMemoryStore()
	require.NoError(t, bankgate.SeedDemoData(context.Background(), db))
	engine, err := bankgate.NewBankgate(db)
	require.NoError(t, err)
	a, err := NewAPI(engine)
	require.NoError(t, err)
	router := a.Router()

	var unauthorized map[string]interface{}
	resp, err := SetUpTestRequest(TestRequest{
		Response: &unauthorized,
		Method:   "GET",
		Route:    "/status",
		Router:   router,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Missing secret key", unauthorized["error"])

	var status model.SystemStatusResult
	resp, err = SetUpTestRequest(TestRequest{
		Response: &status,
		Method:   "GET",
		Route:    "/status",
		Router:   router,
		Header:   map[string]string{"X-Bankgate-Key": "super-secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, status.IsHealthy)
}
