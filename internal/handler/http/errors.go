// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingSignature is returned when an interaction request lacks the
	// X-Signature-Ed25519 or X-Signature-Timestamp header.
	ErrMissingSignature = errors.New("missing interaction signature")

	// ErrInvalidSignature is returned when the signature does not verify
	// against the application public key.
	ErrInvalidSignature = errors.New("invalid interaction signature")

	ErrInvalidPublicKey = errors.New("invalid application public key")

	ErrUnsupportedInteraction = errors.New("unsupported interaction type")
)
