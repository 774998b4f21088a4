package common

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// ItemSeparator joins a source name and an item file name into an item name.
const ItemSeparator = "//"

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// ItemName builds the mapping key for a file inside a source directory.
func ItemName(source, fileName string) string {
	return source + ItemSeparator + strings.TrimSuffix(fileName, ".json")
}

// SplitItemName is the inverse of ItemName.
func SplitItemName(itemName string) (source, item string, ok bool) {
	return strings.Cut(itemName, ItemSeparator)
}
