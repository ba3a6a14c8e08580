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

	model2 "github.com/nellcorp/bankgate/api/model"
	"github.com/nellcorp/bankgate/internal/apierror"

	"github.com/gin-gonic/gin"
)

func (a Api) GetBillerCategories(c *gin.Context) {
	resp := a.engine.GetBillerCategories(c.Request.Context(), authToken(c))
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetBillersByCategory(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp := a.engine.GetBillersByCategory(c.Request.Context(), authToken(c), id)
	c.JSON(http.StatusOK, resp)
}

func (a Api) PayBill(c *gin.Context) {
	var req model2.PayBill
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAPIError(apierror.ErrValidationFailed, "invalid bill payment data", err.Error()))
		return
	}

	err := req.ValidatePayBill()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAPIError(apierror.ErrValidationFailed, "invalid bill payment data", err.Error()))
		return
	}

	resp := a.engine.PayBill(c.Request.Context(), authToken(c), req.ToBillPaymentRequest())
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetBillPaymentHistory(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	pageNumber := parseIntQuery(c.Query("page"), 1)
	pageSize := parseIntQuery(c.Query("page_size"), 0)

	resp := a.engine.GetBillPaymentHistory(c.Request.Context(), authToken(c), id, pageNumber, pageSize)
	c.JSON(http.StatusOK, resp)
}
