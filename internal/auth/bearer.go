package auth

import "strings"

// BearerToken extracts the token from an Authorization header value using
// the Bearer scheme. The header must be exactly two space-separated fields
// with the literal, case-sensitive scheme name; anything else, including
// extra internal whitespace, yields the empty string. The empty string is
// the "no token" sentinel, not an error.
func BearerToken(authorization string) string {
	return schemeToken(authorization, "Bearer")
}

// APIKey extracts the key from an Authorization header using the ApiKey
// scheme, with the same strict parsing as BearerToken.
func APIKey(authorization string) string {
	return schemeToken(authorization, "ApiKey")
}

func schemeToken(authorization string, scheme string) string {
	if authorization == "" {
		return ""
	}

	parts := strings.Split(authorization, " ")
	if len(parts) != 2 || parts[0] != scheme {
		return ""
	}

	return parts[1]
}
