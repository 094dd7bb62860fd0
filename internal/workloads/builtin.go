package workloads

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash/crc32"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	payload   = []byte(strings.Repeat("The quick brown fox jumps over the lazy dog. ", 24))
	emailExpr = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
)

func builtinSuite() *Suite {
	return &Suite{
		Name:        "builtin",
		Description: "standard library primitives: hashing, strings, formatting, sorting, maps, regexp",
		Tests: []Test{
			{"testMD5", testMD5},
			{"testSHA1", testSHA1},
			{"testSHA256", testSHA256},
			{"testCRC32", testCRC32},
			{"testStringBuilder", testStringBuilder},
			{"testStringConcat", testStringConcat},
			{"testSprintf", testSprintf},
			{"testStrconv", testStrconv},
			{"testSort", testSort},
			{"testMap", testMap},
			{"testRegexp", testRegexp},
		},
	}
}

func testMD5() error {
	sum := md5.Sum(payload)
	sink = sum[0]
	return nil
}

func testSHA1() error {
	sum := sha1.Sum(payload)
	sink = sum[0]
	return nil
}

func testSHA256() error {
	sum := sha256.Sum256(payload)
	sink = sum[0]
	return nil
}

func testCRC32() error {
	sink = crc32.ChecksumIEEE(payload)
	return nil
}

func testStringBuilder() error {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("item")
		sb.WriteByte(',')
	}
	sink = sb.Len()
	return nil
}

func testStringConcat() error {
	s := ""
	for i := 0; i < 100; i++ {
		s += "item" + ","
	}
	sink = len(s)
	return nil
}

func testSprintf() error {
	sink = fmt.Sprintf("%s=%d (%.2f%%)", "hits", 1234, 56.789)
	return nil
}

func testStrconv() error {
	s := strconv.Itoa(1234) + "=" + strconv.FormatFloat(56.789, 'f', 2, 64)
	n, err := strconv.Atoi(s[:4])
	if err != nil {
		return err
	}
	sink = n
	return nil
}

func testSort() error {
	values := make([]int, 256)
	for i := range values {
		values[i] = (i * 7919) % 256
	}
	slices.Sort(values)
	sink = values[0]
	return nil
}

func testMap() error {
	m := make(map[string]int, 64)
	for i := 0; i < 64; i++ {
		m["key"+strconv.Itoa(i)] = i
	}
	sink = m["key32"]
	return nil
}

func testRegexp() error {
	if !emailExpr.MatchString("fox.jumps@lazy-dog.example") {
		return fmt.Errorf("regexp did not match")
	}
	return nil
}
