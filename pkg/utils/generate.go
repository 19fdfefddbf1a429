package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateInspectionID creates the public identifier shown to inspectors.
// Format: INS-YYYYMMDD-XXXXXXXX where the suffix is random hex.
func GenerateInspectionID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("INS-%s-%s", now.UTC().Format("20060102"), suffix)
}
