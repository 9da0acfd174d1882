package types

// swagger placeholders for error envelopes

type APIInternalServerError struct{}

type APIBadRequest struct{}
