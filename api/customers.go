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

	"github.com/gin-gonic/gin"
)

func (a Api) RegisterCustomer(c *gin.Context) {
	var req model2.RegisterCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	err := req.ValidateRegisterCustomer()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp := a.engine.RegisterCustomer(c.Request.Context(), req.ToRegistrationRequest())
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetCustomerProfile(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp := a.engine.GetCustomerProfile(c.Request.Context(), authToken(c), id)
	c.JSON(http.StatusOK, resp)
}

func (a Api) UpdateCustomerProfile(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	var req model2.UpdateCustomerProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}
	req.CustomerID = id

	err := req.ValidateUpdateCustomerProfile()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp := a.engine.UpdateCustomerProfile(c.Request.Context(), authToken(c), req.ToProfile())
	c.JSON(http.StatusOK, resp)
}

func (a Api) ChangePassword(c *gin.Context) {
	var req model2.ChangePassword
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp := a.engine.ChangePassword(c.Request.Context(), authToken(c), req.ToPasswordChangeRequest())
	c.JSON(http.StatusOK, resp)
}
