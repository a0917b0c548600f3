package webhook_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nautica/internal/domains/payment/webhook"
)

const testSecret = "whsec_test"

func signPayload(t *testing.T, secret string, timestamp int64, body []byte) string {
	t.Helper()

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	body := []byte(`{"type":"checkout.session.completed"}`)
	tolerance := 5 * time.Minute

	t.Run("valid signature", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload(t, testSecret, now.Unix(), body))

		assert.NoError(t, webhook.VerifySignature(body, header, testSecret, tolerance, now))
	})

	t.Run("one valid digest among several is enough", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=%s,v1=%s",
			now.Unix(),
			signPayload(t, "whsec_old", now.Unix(), body),
			signPayload(t, testSecret, now.Unix(), body),
		)

		assert.NoError(t, webhook.VerifySignature(body, header, testSecret, tolerance, now))
	})

	t.Run("unknown schemes are ignored", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v0=deadbeef,v1=%s", now.Unix(), signPayload(t, testSecret, now.Unix(), body))

		assert.NoError(t, webhook.VerifySignature(body, header, testSecret, tolerance, now))
	})

	t.Run("tampered body", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload(t, testSecret, now.Unix(), body))

		err := webhook.VerifySignature([]byte(`{"type":"something.else"}`), header, testSecret, tolerance, now)

		assert.EqualError(t, err, "signature mismatch")
	})

	t.Run("wrong secret", func(t *testing.T) {
		header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), signPayload(t, "whsec_other", now.Unix(), body))

		err := webhook.VerifySignature(body, header, testSecret, tolerance, now)

		assert.EqualError(t, err, "signature mismatch")
	})

	t.Run("stale timestamp", func(t *testing.T) {
		old := now.Add(-10 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", old, signPayload(t, testSecret, old, body))

		err := webhook.VerifySignature(body, header, testSecret, tolerance, now)

		assert.EqualError(t, err, "signature timestamp outside tolerance")
	})

	t.Run("future timestamp outside tolerance", func(t *testing.T) {
		future := now.Add(10 * time.Minute).Unix()
		header := fmt.Sprintf("t=%d,v1=%s", future, signPayload(t, testSecret, future, body))

		err := webhook.VerifySignature(body, header, testSecret, tolerance, now)

		assert.EqualError(t, err, "signature timestamp outside tolerance")
	})

	t.Run("missing header", func(t *testing.T) {
		err := webhook.VerifySignature(body, "", testSecret, tolerance, now)

		assert.EqualError(t, err, "missing signature header")
	})

	t.Run("missing secret", func(t *testing.T) {
		err := webhook.VerifySignature(body, "t=1,v1=00", "", tolerance, now)

		assert.EqualError(t, err, "webhook secret is not configured")
	})

	t.Run("malformed pieces", func(t *testing.T) {
		tests := []struct {
			name    string
			header  string
			wantMsg string
		}{
			{name: "no key-value shape", header: "garbage", wantMsg: "malformed signature header"},
			{name: "non-numeric timestamp", header: "t=abc,v1=00", wantMsg: "malformed signature timestamp"},
			{name: "non-hex digest", header: "t=1,v1=zz", wantMsg: "malformed signature digest"},
			{name: "timestamp only", header: "t=1", wantMsg: "incomplete signature header"},
			{name: "digest only", header: "v1=00", wantMsg: "incomplete signature header"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := webhook.VerifySignature(body, tt.header, testSecret, tolerance, now)

				assert.EqualError(t, err, tt.wantMsg)
			})
		}
	})
}
