// Copyright Lingora SDK Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"

	"github.com/lingora/lingora-go/pkg/core/schema"
)

// ServiceError is a structured error payload returned by the service
// (status code 400 and above). The SDK does not interpret upstream error
// semantics beyond exposing the parsed status; retry policy is the
// caller's concern.
type ServiceError struct {
	// Op names the failing operation, e.g. "query".
	Op string
	// Status is the parsed upstream status, nil when the body carried
	// none.
	Status *schema.Status
}

func (e *ServiceError) Error() string {
	if e.Status != nil && e.Status.ErrorDetails != "" {
		return fmt.Sprintf("lingora: %s: %s", e.Op, e.Status.ErrorDetails)
	}
	return fmt.Sprintf("lingora: %s request failed", e.Op)
}

// Code returns the upstream status code, or 0 when unknown.
func (e *ServiceError) Code() int {
	if e.Status != nil && e.Status.Code != nil {
		return *e.Status.Code
	}
	return 0
}
