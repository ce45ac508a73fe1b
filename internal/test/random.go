package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	katakana     = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワン"
)

var (
	rngMu        sync.Mutex
	rng          = rand.New(rand.NewSource(time.Now().UnixNano()))
	katakanaRune = []rune(katakana)
)

// RandomCustomerID returns an opaque ASCII identifier like the ones issued by the auth provider.
func RandomCustomerID() string {
	return randomString([]rune(asciiLetters), 8, 36)
}

// RandomProductName returns a katakana product name with length within bounds.
func RandomProductName(minLen, maxLen int) string {
	return randomString(katakanaRune, minLen, maxLen)
}

// RandomQuantity returns a positive order quantity.
func RandomQuantity() int {
	return 1 + randomIntn(9999)
}

func randomString(alphabet []rune, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]rune, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
