package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// KeySeparator joins the parts of a draft key into a single store key.
// The unit separator cannot appear in user IDs, form slugs, or object IDs,
// so two users can never collide even for the same form/object.
const KeySeparator = "\x1f"
