package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位十六进制实体 ID
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
