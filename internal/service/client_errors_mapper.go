// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-health-diary/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		// the only 404 the client meets is a missing nutrition plan
		return ErrPlanNotFound

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return ErrServerUnavailable
	}

	return err
}
