package services

import "errors"

// ErrDocumentNotFound covers both a genuinely absent document and a
// malformed identifier, so the caller never learns which.
var ErrDocumentNotFound = errors.New("document not found")
