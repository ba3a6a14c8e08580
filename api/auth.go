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

func (a Api) Login(c *gin.Context) {
	var req model2.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	err := req.ValidateLoginRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp := a.engine.Login(c.Request.Context(), req.Username, req.Password)
	c.JSON(http.StatusOK, resp)
}

func (a Api) Logout(c *gin.Context) {
	resp := a.engine.Logout(c.Request.Context(), authToken(c))
	c.JSON(http.StatusOK, resp)
}

func (a Api) ValidateToken(c *gin.Context) {
	resp := a.engine.ValidateToken(c.Request.Context(), authToken(c))
	c.JSON(http.StatusOK, resp)
}
