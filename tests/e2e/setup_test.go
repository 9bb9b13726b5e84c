//go:build e2e

package e2e_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestE2E(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "E2E Suite")
}

var (
	suiteCtx       context.Context
	suiteCtxCancel context.CancelFunc

	staticEndpoint string
	docRoot        string
	httpClient     *http.Client
)

var _ = ginkgo.BeforeSuite(func() {
	suiteCtx, suiteCtxCancel = context.WithCancel(context.Background())
	ginkgo.DeferCleanup(suiteCtxCancel)

	staticEndpoint = expectEnv("E2E_STATIC_ENDPOINT") // "http://localhost:8000"
	docRoot = expectEnv("E2E_STATIC_DOC_ROOT")

	httpClient = &http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	}
})

func expectEnv(k string) string {
	v := os.Getenv(k)
	gomega.Expect(v).NotTo(gomega.BeZero(), fmt.Sprintf("Please make sure %q is set correctly.", k))
	return v
}
