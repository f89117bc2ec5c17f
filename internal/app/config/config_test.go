package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig_UploadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the variable itself must be absent
	// for the default to apply.
	t.Setenv("APP_UPLOAD_ALLOWED_CONTENT_TYPES", "")
	os.Unsetenv("APP_UPLOAD_ALLOWED_CONTENT_TYPES")

	internalConfig := NewInternalConfig()

	allowed := strings.Split(internalConfig.Uploads.AllowedContentTypes, ",")
	assert.Contains(t, allowed, "application/pdf")
	assert.Contains(t, allowed, "image/png")
	assert.Contains(t, allowed, "image/jpeg")
	assert.Contains(t, allowed, "image/gif")
}
