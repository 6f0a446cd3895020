package util_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"

	"heroapp/internal/core/util"
)

func TestCursorRoundTrip(t *testing.T) {
	RegisterTestingT(t)
	t.Setenv("CURSOR_SECRET_KEY", "cursor-secret")

	token := util.EncodeCursor("2026-08-28T10:00:00.123456789Z", 42)

	datetime, id, err := util.DecodeCursor(token)

	Expect(err).NotTo(HaveOccurred())
	Expect(datetime).To(Equal("2026-08-28T10:00:00.123456789Z"))
	Expect(id).To(Equal(42))
}

func TestCursorRejectsTamperedPayload(t *testing.T) {
	RegisterTestingT(t)
	t.Setenv("CURSOR_SECRET_KEY", "cursor-secret")

	token := util.EncodeCursor("2026-08-28T10:00:00Z", 42)
	forged := util.EncodeCursor("2026-08-28T10:00:00Z", 43)

	parts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")

	_, _, err := util.DecodeCursor(forgedParts[0] + "." + parts[1])

	Expect(err).To(HaveOccurred())
}

func TestCursorRejectsWrongFormat(t *testing.T) {
	RegisterTestingT(t)

	_, _, err := util.DecodeCursor("no-dot-here")

	Expect(err).To(HaveOccurred())
}

func TestCursorRejectsDifferentSecret(t *testing.T) {
	RegisterTestingT(t)

	t.Setenv("CURSOR_SECRET_KEY", "first-secret")
	token := util.EncodeCursor("2026-08-28T10:00:00Z", 42)

	t.Setenv("CURSOR_SECRET_KEY", "second-secret")
	_, _, err := util.DecodeCursor(token)

	Expect(err).To(HaveOccurred())
}
