package types

import "errors"

var (
	ErrSettingMissing    = errors.New("setting is missing")
	ErrSettingType       = errors.New("setting has an unexpected type")
	ErrSourceUnavailable = errors.New("settings source is unavailable")

	ErrEndpointNotConfigured = errors.New("webhook endpoint is not configured")
	ErrStyleRecordsDisabled  = errors.New("style records are disabled")
	ErrDeliveryStatus        = errors.New("webhook responded with a non-success status")
	ErrAvatarMissing         = errors.New("profile document has no avatarFull element")
)
