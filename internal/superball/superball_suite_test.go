package superball_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSuperball(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "superball")
}
