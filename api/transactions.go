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
	"net/http"
	"strconv"
	"time"

	model2 "github.com/nellcorp/bankgate/api/model"
	"github.com/nellcorp/bankgate/internal/apierror"

	"github.com/gin-gonic/gin"
)

const dateOnly = "2006-01-02"

// parseDateQuery accepts RFC3339 timestamps or bare dates.
func parseDateQuery(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, value)
}

func parseIntQuery(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func (a Api) GetTransactionHistory(c *gin.Context) {
	number, passed := c.Params.Get("number")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required. pass number in the route /:number"})
		return
	}

	fromDate, err := parseDateQuery(c.Query("from"), time.Time{})
	if err != nil {
		apiErr := apierror.NewAPIError(apierror.ErrInvalidArgument, "from must be an RFC3339 timestamp or YYYY-MM-DD date", err.Error())
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}
	toDate, err := parseDateQuery(c.Query("to"), time.Now())
	if err != nil {
		apiErr := apierror.NewAPIError(apierror.ErrInvalidArgument, "to must be an RFC3339 timestamp or YYYY-MM-DD date", err.Error())
		c.JSON(apierror.MapErrorToHTTPStatus(apiErr), apiErr)
		return
	}
	pageNumber := parseIntQuery(c.Query("page"), 1)
	pageSize := parseIntQuery(c.Query("page_size"), 0)

	resp := a.engine.GetTransactionHistory(c.Request.Context(), authToken(c), number, fromDate, toDate, pageNumber, pageSize)
	c.JSON(http.StatusOK, resp)
}

func (a Api) TransferMoney(c *gin.Context) {
	var req model2.TransferMoney
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAPIError(apierror.ErrValidationFailed, "invalid transfer data", err.Error()))
		return
	}

	err := req.ValidateTransferMoney()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAPIError(apierror.ErrValidationFailed, "invalid transfer data", err.Error()))
		return
	}

	resp := a.engine.TransferMoney(c.Request.Context(), authToken(c), req.ToTransferRequest())
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetTransferStatus(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp := a.engine.GetTransferStatus(c.Request.Context(), authToken(c), id)
	c.JSON(http.StatusOK, resp)
}
