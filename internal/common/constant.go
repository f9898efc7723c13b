package common

// AuthorizationHeaderName is the HTTP header that carries the bearer access
// token on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the expected scheme of the Authorization header.
const BearerPrefix = "Bearer"
