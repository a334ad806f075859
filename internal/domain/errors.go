package domain

import "errors"

var (
	// ErrShopNotConfigured — для магазина нет токена доступа.
	ErrShopNotConfigured = errors.New("shop is not configured")
	// ErrUpstream — сбой Admin API (сеть, статус, GraphQL errors).
	ErrUpstream = errors.New("upstream api failure")
)
