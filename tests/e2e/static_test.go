//go:build e2e

package e2e_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type response struct {
	code   int
	header http.Header
	body   []byte
}

func get(path string) response {
	req, err := http.NewRequestWithContext(suiteCtx, http.MethodGet, staticEndpoint+path, nil)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

	resp, err := httpClient.Do(req)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

	return response{code: resp.StatusCode, header: resp.Header, body: body}
}

func expectNoCache(h http.Header) {
	gomega.Expect(h.Values("Cache-Control")).To(gomega.Equal([]string{"no-cache, no-store, must-revalidate"}))
	gomega.Expect(h.Values("Pragma")).To(gomega.Equal([]string{"no-cache"}))
	gomega.Expect(h.Values("Expires")).To(gomega.Equal([]string{"0"}))
}

var _ = ginkgo.Describe("Static files", func() {
	ginkgo.It("serves index.html as on disk", func() {
		onDisk, err := os.ReadFile(filepath.Join(docRoot, "index.html"))
		gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

		resp := get("/index.html")

		gomega.Expect(resp.code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(resp.body).To(gomega.Equal(onDisk))
		expectNoCache(resp.header)
	})

	ginkgo.It("keeps no-cache headers on missing files", func() {
		resp := get("/no-such-file.png")

		gomega.Expect(resp.code).To(gomega.Equal(http.StatusNotFound))
		expectNoCache(resp.header)
	})

	ginkgo.It("does not leave the document root", func() {
		resp := get("/../../etc/passwd")

		gomega.Expect(resp.code).To(gomega.Equal(http.StatusNotFound))
		expectNoCache(resp.header)
	})

	ginkgo.It("returns identical bodies for repeated requests", func() {
		first := get("/index.html")
		second := get("/index.html")

		gomega.Expect(second.body).To(gomega.Equal(first.body))
	})
})
