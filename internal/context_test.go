package internal

import (
	"context"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestInternal(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Internal Suite")
}

var _ = ginkgo.Describe("WithTimeout", func() {
	ginkgo.It("should apply the requested timeout", func() {
		ctx, cancel := WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(time.Until(deadline)).To(gomega.BeNumerically("<=", 2*time.Second))
	})

	ginkgo.It("should fall back to five seconds for a non-positive duration", func() {
		ctx, cancel := WithTimeout(context.Background(), 0)
		defer cancel()

		deadline, ok := ctx.Deadline()
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(time.Until(deadline)).To(gomega.BeNumerically(">", 2*time.Second))
	})
})

var _ = ginkgo.Describe("Session context", func() {
	ginkgo.It("should round-trip the principal", func() {
		ctx := ContextWithSession(context.Background(), SessionPrincipal{UserID: 3, Role: "staff"})

		principal, ok := SessionFromContext(ctx)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(principal.UserID).To(gomega.Equal(int64(3)))
		gomega.Expect(principal.Role).To(gomega.Equal("staff"))
	})

	ginkgo.It("should report absence on a bare context", func() {
		_, ok := SessionFromContext(context.Background())
		gomega.Expect(ok).To(gomega.BeFalse())
	})
})
