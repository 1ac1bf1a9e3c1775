package companion

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// newID is "<unix millis>-<9 random chars>".
func newID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
