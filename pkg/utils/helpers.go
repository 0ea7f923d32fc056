package utils

import (
	"strings"
	"time"

	"golang.org/x/exp/rand"
)

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

func GenerateRandomString(limit int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, limit)
	for i := range result {
		result[i] = chars[rand.Intn(len(chars))]
	}

	return string(result)
}

// LocalPart returns the part of an email address before the first '@'.
// An address without '@' is returned whole.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
