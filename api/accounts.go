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

	"github.com/gin-gonic/gin"
)

func (a Api) GetCustomerAccounts(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	resp := a.engine.GetCustomerAccounts(c.Request.Context(), authToken(c), id)
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAccountDetails(c *gin.Context) {
	number, passed := c.Params.Get("number")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required. pass number in the route /:number"})
		return
	}

	resp := a.engine.GetAccountDetails(c.Request.Context(), authToken(c), number)
	c.JSON(http.StatusOK, resp)
}

func (a Api) GetAccountBalance(c *gin.Context) {
	number, passed := c.Params.Get("number")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "number is required. pass number in the route /:number"})
		return
	}

	resp := a.engine.GetAccountBalance(c.Request.Context(), authToken(c), number)
	c.JSON(http.StatusOK, resp)
}
