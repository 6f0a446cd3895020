package auth_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"heroapp/pkg/auth"
)

func newTestIssuer() *auth.Issuer {
	return auth.NewIssuer(
		[]byte("access-secret-for-tests"),
		[]byte("refresh-secret-for-tests"),
		15*time.Minute,
		7*24*time.Hour,
	)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()

	token, err := issuer.IssueAccessToken("11111111-1111-1111-1111-111111111111")

	Expect(err).NotTo(HaveOccurred())
	Expect(token).NotTo(BeEmpty())

	userUUID, err := issuer.VerifyAccessToken(token)

	Expect(err).NotTo(HaveOccurred())
	Expect(userUUID).To(Equal("11111111-1111-1111-1111-111111111111"))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()

	token, err := issuer.IssueRefreshToken("22222222-2222-2222-2222-222222222222")

	Expect(err).NotTo(HaveOccurred())

	userUUID, err := issuer.VerifyRefreshToken(token)

	Expect(err).NotTo(HaveOccurred())
	Expect(userUUID).To(Equal("22222222-2222-2222-2222-222222222222"))
}

func TestAccessTokenRejectedAsRefreshToken(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()

	access, err := issuer.IssueAccessToken("33333333-3333-3333-3333-333333333333")

	Expect(err).NotTo(HaveOccurred())

	_, err = issuer.VerifyRefreshToken(access)

	Expect(err).To(HaveOccurred())
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()

	refresh, err := issuer.IssueRefreshToken("33333333-3333-3333-3333-333333333333")

	Expect(err).NotTo(HaveOccurred())

	_, err = issuer.VerifyAccessToken(refresh)

	Expect(err).To(HaveOccurred())
}

func TestTokenFromDifferentSecretRejected(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()
	other := auth.NewIssuer(
		[]byte("some-other-access-secret"),
		[]byte("some-other-refresh-secret"),
		15*time.Minute,
		7*24*time.Hour,
	)

	token, err := other.IssueAccessToken("44444444-4444-4444-4444-444444444444")

	Expect(err).NotTo(HaveOccurred())

	_, err = issuer.VerifyAccessToken(token)

	Expect(err).To(HaveOccurred())
}

func TestExpiredTokenRejected(t *testing.T) {
	RegisterTestingT(t)

	issuer := auth.NewIssuer(
		[]byte("access-secret-for-tests"),
		[]byte("refresh-secret-for-tests"),
		-time.Minute,
		-time.Minute,
	)

	token, err := issuer.IssueAccessToken("55555555-5555-5555-5555-555555555555")

	Expect(err).NotTo(HaveOccurred())

	_, err = issuer.VerifyAccessToken(token)

	Expect(err).To(HaveOccurred())
}

func TestMalformedTokenRejected(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()

	_, err := issuer.VerifyAccessToken("not-a-jwt")

	Expect(err).To(HaveOccurred())
}

func TestDecodeUnverifiedReturnsClaimWithoutValidation(t *testing.T) {
	RegisterTestingT(t)

	issuer := newTestIssuer()
	other := auth.NewIssuer(
		[]byte("some-other-access-secret"),
		[]byte("some-other-refresh-secret"),
		15*time.Minute,
		7*24*time.Hour,
	)

	// Token signed by a different issuer still decodes; only verification
	// checks the signature.
	token, err := other.IssueAccessToken("66666666-6666-6666-6666-666666666666")

	Expect(err).NotTo(HaveOccurred())
	Expect(issuer.DecodeUnverified(token)).To(Equal("66666666-6666-6666-6666-666666666666"))

	Expect(issuer.DecodeUnverified("garbage")).To(BeEmpty())
}
