// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrUnauthorized        = errors.New("ErrUnauthorized")
	ErrGamePaused          = errors.New("ErrGamePaused")
	ErrInvalidNumber       = errors.New("ErrInvalidNumber")
	ErrInvalidBetAmount    = errors.New("ErrInvalidBetAmount")
	ErrMathOverflow        = errors.New("ErrMathOverflow")
	ErrInsufficientFunds   = errors.New("ErrInsufficientFunds")
	ErrAlreadyInitialized  = errors.New("ErrAlreadyInitialized")
	ErrNotInitialized      = errors.New("ErrNotInitialized")
	ErrInvalidRewardFactor = errors.New("ErrInvalidRewardFactor")
	ErrInvalidBetBounds    = errors.New("ErrInvalidBetBounds")
	ErrInvalidMode         = errors.New("ErrInvalidMode")
)
