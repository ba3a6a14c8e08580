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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nellcorp/bankgate/config"
	"github.com/nellcorp/bankgate/database"
	"github.com/nellcorp/bankgate/internal/lock"
	"github.com/nellcorp/bankgate/model"
)

// Version is reported by GetSystemStatus.
const Version = "1.0.0"

var (
	tracer = otel.Tracer("Gateway engine")
)

// Bankgate is the gateway engine. Every public operation resolves the caller
// through the session store, delegates to the datasource, and returns a typed
// result envelope. Raw errors never cross this boundary.
type Bankgate struct {
	datasource      database.IDataSource
	locks           *lock.Registry
	defaultPageSize int
	maxPageSize     int
}

// NewBankgate initializes the engine with the provided datasource.
// Pagination bounds come from the loaded configuration.
func NewBankgate(db database.IDataSource) (*Bankgate, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	newBankgate := &Bankgate{
		datasource:      db,
		locks:           lock.NewRegistry(),
		defaultPageSize: configuration.Pagination.DefaultPageSize,
		maxPageSize:     configuration.Pagination.MaxPageSize,
	}
	return newBankgate, nil
}

// recoverOperation converts a panic inside a public operation into a failure
// result via apply. Callers never see raw faults.
func recoverOperation(span trace.Span, apply func(err error)) {
	if r := recover(); r != nil {
		err := fmt.Errorf("%v", r)
		span.RecordError(err)
		logrus.Errorf("operation panicked: %v", err)
		apply(err)
	}
}

// normalizePage clamps page number and size to sane bounds.
func (g *Bankgate) normalizePage(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = g.defaultPageSize
	}
	if pageSize > g.maxPageSize {
		pageSize = g.maxPageSize
	}
	return pageNumber, pageSize
}

// paginate slices items by (page-1)*size offset. The returned slice is empty,
// never nil, when the offset runs past the end.
func paginate(items []model.Transaction, pageNumber, pageSize int) []model.Transaction {
	skip := (pageNumber - 1) * pageSize
	if skip >= len(items) {
		return []model.Transaction{}
	}
	end := skip + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// GetServerTime returns the engine's current wall-clock time.
func (g *Bankgate) GetServerTime() time.Time {
	return time.Now()
}

// GetSystemStatus reports engine health and version.
func (g *Bankgate) GetSystemStatus() model.SystemStatusResult {
	return model.SystemStatusResult{
		IsHealthy:  true,
		Version:    Version,
		ServerTime: time.Now(),
		Status:     "Operational",
		Warnings:   []string{},
		Errors:     []string{},
	}
}
