package domain

import "errors"

var (
	ErrSecretNotFound       = errors.New("secret not found")
	ErrIdentityLinkNotFound = errors.New("identity link not found")
	ErrChannelUnavailable   = errors.New("notification channel unavailable")
	ErrSessionExists        = errors.New("session already exists for code")
)
