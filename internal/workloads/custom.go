package workloads

import (
	"bytes"
	"strings"
)

// customSuite is the starting point for user comparisons: replace the pair
// with the two implementations under study.
func customSuite() *Suite {
	return &Suite{
		Name:        "custom",
		Description: "user pair: bytes.Buffer versus strings.Builder",
		Paired:      true,
		Tests: []Test{
			{"testBytesBuffer", testBytesBuffer},
			{"testStringsBuilder", testStringsBuilder},
		},
	}
}

const csvLine = "alpha,beta,gamma,delta\n"

func testBytesBuffer() error {
	var buf bytes.Buffer
	for i := 0; i < 64; i++ {
		buf.WriteString(csvLine)
	}
	sink = buf.String()
	return nil
}

func testStringsBuilder() error {
	var sb strings.Builder
	for i := 0; i < 64; i++ {
		sb.WriteString(csvLine)
	}
	sink = sb.String()
	return nil
}
