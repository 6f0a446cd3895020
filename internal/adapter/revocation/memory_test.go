package revocation_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"heroapp/internal/adapter/revocation"
)

func TestMemoryRevoker(t *testing.T) {
	RegisterTestingT(t)

	revoker := revocation.NewMemoryRevoker()
	ctx := context.Background()

	revoked, err := revoker.IsRevoked(ctx, "some-uuid")

	Expect(err).NotTo(HaveOccurred())
	Expect(revoked).To(BeFalse())

	Expect(revoker.Revoke(ctx, "some-uuid", time.Hour)).To(Succeed())

	revoked, err = revoker.IsRevoked(ctx, "some-uuid")

	Expect(err).NotTo(HaveOccurred())
	Expect(revoked).To(BeTrue())

	// Other uuids are unaffected.
	revoked, err = revoker.IsRevoked(ctx, "another-uuid")

	Expect(err).NotTo(HaveOccurred())
	Expect(revoked).To(BeFalse())
}

func TestMemoryRevokerEntryExpires(t *testing.T) {
	RegisterTestingT(t)

	revoker := revocation.NewMemoryRevoker()
	ctx := context.Background()

	Expect(revoker.Revoke(ctx, "some-uuid", 10*time.Millisecond)).To(Succeed())

	Eventually(func() bool {
		revoked, _ := revoker.IsRevoked(ctx, "some-uuid")
		return revoked
	}, time.Second, 20*time.Millisecond).Should(BeFalse())
}
