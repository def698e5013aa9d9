package images

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prompt builds the fixed photographic prompt for a snack. The template
// normalizes output style regardless of the caller-supplied description.
func Prompt(name, description string) string {
	return fmt.Sprintf("Professional food photography of %s. %s. High-resolution, appetizing, studio lighting, clean white background, professional styling, ultra detailed, 4K quality.", name, description)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// objectKey derives a collision-resistant storage key from the snack
// name. The millisecond timestamp plus a random suffix means repeated
// generations for the same name never overwrite each other.
func objectKey(name string, now time.Time) string {
	slug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "snack"
	}
	return fmt.Sprintf("%s-%d-%s.png", slug, now.UnixMilli(), uuid.NewString()[:8])
}
