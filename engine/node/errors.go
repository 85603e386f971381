package node

import "github.com/patchline/patchline/engine/core"

// Canonical error codes shared across node operation handlers.
const (
	CodeMissingCredentials = "MissingCredentials"
	CodeUnknownOperation   = "UnknownOperation"
	CodeInvalidParams      = "InvalidParams"
	CodeUpstreamError      = "UpstreamError"
	CodeEmptyResponse      = "EmptyResponse"
	CodeInternal           = "Internal"
)

func newError(code string, err error, details map[string]any) *core.Error {
	return core.NewError(err, code, details)
}

// MissingCredentials reports that a node's credential is not configured.
func MissingCredentials(err error, details map[string]any) *core.Error {
	return newError(CodeMissingCredentials, err, details)
}

// UnknownOperation rejects a resource/operation pair the node does not serve.
func UnknownOperation(err error, details map[string]any) *core.Error {
	return newError(CodeUnknownOperation, err, details)
}

// InvalidParams wraps parameter validation failures with the canonical code.
func InvalidParams(err error, details map[string]any) *core.Error {
	return newError(CodeInvalidParams, err, details)
}

// UpstreamError surfaces a failure reported by the remote API.
func UpstreamError(err error, details map[string]any) *core.Error {
	return newError(CodeUpstreamError, err, details)
}

// EmptyResponse signals an upstream reply with no usable payload.
func EmptyResponse(err error, details map[string]any) *core.Error {
	return newError(CodeEmptyResponse, err, details)
}

// Internal signals unexpected node failures.
func Internal(err error, details map[string]any) *core.Error {
	return newError(CodeInternal, err, details)
}
