package pathstat_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPathstat(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pathstat Suite")
}
