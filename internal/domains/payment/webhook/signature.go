package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nautica/shared/failure"
)

// VerifySignature checks a processor webhook signature header of the form
// "t=<unix>,v1=<hex>[,v1=<hex>...]" against the exact raw body bytes.
// The signed payload is "{timestamp}.{rawBody}". Any parse problem, a stale
// timestamp or a digest mismatch rejects the delivery: verification fails
// closed.
func VerifySignature(rawBody []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if secret == "" {
		return failure.ConfigError("webhook secret is not configured") // nolint:wrapcheck
	}

	if header == "" {
		return failure.SignatureInvalid("missing signature header") // nolint:wrapcheck
	}

	var timestamp int64
	var candidates [][]byte
	sawTimestamp := false

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return failure.SignatureInvalid("malformed signature header") // nolint:wrapcheck
		}

		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return failure.SignatureInvalid("malformed signature timestamp") // nolint:wrapcheck
			}

			timestamp = parsed
			sawTimestamp = true
		case "v1":
			decoded, err := hex.DecodeString(value)
			if err != nil {
				return failure.SignatureInvalid("malformed signature digest") // nolint:wrapcheck
			}

			candidates = append(candidates, decoded)
		default:
			// Unknown schemes (v0 test-mode signatures etc.) are ignored.
		}
	}

	if !sawTimestamp || len(candidates) == 0 {
		return failure.SignatureInvalid("incomplete signature header") // nolint:wrapcheck
	}

	age := now.Unix() - timestamp
	if age < 0 {
		age = -age
	}

	if time.Duration(age)*time.Second > tolerance {
		return failure.SignatureInvalid("signature timestamp outside tolerance") // nolint:wrapcheck
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	for _, candidate := range candidates {
		if hmac.Equal(expected, candidate) {
			return nil
		}
	}

	return failure.SignatureInvalid("signature mismatch") // nolint:wrapcheck
}
