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
	"fmt"

	"github.com/google/uuid"
)

// GenerateUUIDWithPrefix generates a UUID with a given module name as a prefix.
// This is useful for creating unique identifiers with context-specific prefixes,
// such as session tokens ("tok_...").
func GenerateUUIDWithPrefix(module string) string {
	id := uuid.New()
	return fmt.Sprintf("%s_%s", module, id.String())
}

// FormatTransactionID renders a sequential transaction counter in the
// fixed-width wire format used across the gateway ("TXN001001").
func FormatTransactionID(n int64) string {
	return fmt.Sprintf("TXN%06d", n)
}

// FormatPaymentID renders a sequential bill-payment counter ("PAY001001").
func FormatPaymentID(n int64) string {
	return fmt.Sprintf("PAY%06d", n)
}

// FormatCustomerID renders a sequential customer counter ("CUST001").
func FormatCustomerID(n int64) string {
	return fmt.Sprintf("CUST%03d", n)
}
