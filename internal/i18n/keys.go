package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"

	// ErrKeyInvalidPipeline indicates a pipeline field failed validation.
	ErrKeyInvalidPipeline = "error.invalid_pipeline"
	// ErrKeyNumericDegenerate indicates valid input whose calculation is not finite.
	ErrKeyNumericDegenerate = "error.numeric_degenerate"
	// ErrKeyUnsupportedFormat indicates an unknown report export format.
	ErrKeyUnsupportedFormat = "error.unsupported_format"
	// ErrKeyExportFailed indicates the report could not be rendered.
	ErrKeyExportFailed = "error.export_failed"
	// ErrKeyInvalidSettings indicates rejected calculation settings.
	ErrKeyInvalidSettings = "error.invalid_settings"
	// ErrKeySettingsUnavailable indicates settings storage is not configured or reachable.
	ErrKeySettingsUnavailable = "error.settings_unavailable"
)
