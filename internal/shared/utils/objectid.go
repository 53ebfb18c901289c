package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"time"
)

// Resource ids are 24-char lowercase hex: 4 timestamp bytes followed by
// 8 random bytes, same shape as a Mongo ObjectId. The format is part of
// the public API, so ids are validated before any lookup.
var objectIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)

// NewObjectID generates a new 24-char hex resource id.
func NewObjectID() string {
	buf := make([]byte, 12)
	binary.BigEndian.PutUint32(buf[:4], uint32(time.Now().Unix()))
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(buf[4:])
	return hex.EncodeToString(buf)
}

// IsValidObjectID reports whether s is a well-formed resource id.
func IsValidObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}
