package utils

import (
	"fmt"
	"medintake-service/internal/pkg/constvars"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateObjectKey builds a unique object name under directory that keeps
// the sanitized original file name as its suffix.
func GenerateObjectKey(directory, owner, fileName string) string {
	timestamp := time.Now().UTC().Format("20060102T150405")
	name := fmt.Sprintf("%s_%s_%s", timestamp, uuid.NewString()[:8], SanitizeFileName(fileName))
	return path.Join(strings.Trim(directory, "/"), owner, name)
}
