package core

import (
	"regexp"
	"strings"
)

// Precompiled patterns for common secret shapes in error/log strings.
var (
	bearerTokenRe = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9\-\._~\+\/]+=*`)
	kvSecretRe    = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|password|pass|pwd|credential|auth|access_token)\s*[:=]\s*["']?[^"'\s]+["']?`,
	)
	genericKeyRe = regexp.MustCompile(
		`\b(sk-[A-Za-z0-9_\-]{16,}|pk-[A-Za-z0-9_\-]{16,}|api_[A-Za-z0-9_\-]{16,}|key-[A-Za-z0-9_\-]{16,})\b`,
	)
	jwtRe   = regexp.MustCompile(`\b(eyJ[A-Za-z0-9_\-]+\.eyJ[A-Za-z0-9_\-]+\.[A-Za-z0-9_\-]+)\b`)
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
)

// RedactString trims, truncates, and scrubs common secret patterns.
func RedactString(s string) string {
	const maxLen = 256
	s = strings.TrimSpace(s)
	// Apply redaction patterns in order of specificity
	s = jwtRe.ReplaceAllString(s, "[JWT_REDACTED]")
	s = bearerTokenRe.ReplaceAllString(s, "$1[REDACTED]")
	s = kvSecretRe.ReplaceAllString(s, "$1=[REDACTED]")
	s = genericKeyRe.ReplaceAllString(s, "[REDACTED]")
	s = emailRe.ReplaceAllString(s, "[EMAIL_REDACTED]")
	if len(s) > maxLen {
		s = s[:maxLen] + "…"
	}
	return s
}

// RedactError applies RedactString to an error, returning an empty string when nil.
func RedactError(err error) string {
	if err == nil {
		return ""
	}
	return RedactString(err.Error())
}

// sensitiveSubstrings identify a sensitive header if they appear in any segment.
var sensitiveSubstrings = []string{
	"password", "secret", "passwd", "pwd", "apikey", "api-key", "api_key",
	"private-key", "secret-key", "access-key", "session", "credential", "cred",
}

// sensitiveSuffixes identify a sensitive header only as the last segment.
var sensitiveSuffixes = []string{
	"authorization", "token", "cookie", "auth", "key", "bearer", "jwt",
}

// isSensitiveHeader checks if a header name carries credentials using
// segment-based matching over common delimiters.
func isSensitiveHeader(headerName string) bool {
	lowerName := strings.ToLower(headerName)
	compoundPatterns := []string{
		"api-key", "api_key", "apikey",
		"private-key", "private_key", "privatekey",
		"secret-key", "secret_key", "secretkey",
		"access-key", "access_key", "accesskey",
	}
	for _, pattern := range compoundPatterns {
		if strings.Contains(lowerName, pattern) {
			return true
		}
	}
	segments := strings.FieldsFunc(lowerName, func(r rune) bool {
		return r == '-' || r == '_' || r == '.'
	})
	for _, segment := range segments {
		for _, pattern := range sensitiveSubstrings {
			if segment == pattern {
				return true
			}
		}
	}
	if len(segments) > 0 {
		lastSegment := segments[len(segments)-1]
		for _, suffix := range sensitiveSuffixes {
			if lastSegment == suffix {
				return true
			}
		}
	}
	return false
}

// RedactHeaders returns a copy of headers with sensitive values redacted for
// logging. The Authorization scheme is preserved ("Bearer [REDACTED]") while
// other sensitive headers are replaced entirely. Non-sensitive values still
// pass through RedactString to catch embedded secrets.
func RedactHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return headers
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		switch {
		case strings.EqualFold(k, "authorization") || strings.EqualFold(k, "proxy-authorization"):
			out[k] = RedactString(v)
		case isSensitiveHeader(k) || strings.EqualFold(k, "set-cookie") || strings.EqualFold(k, "cookie"):
			out[k] = "[REDACTED]"
		default:
			out[k] = RedactString(v)
		}
	}
	return out
}
