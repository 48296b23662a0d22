package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// ResolveOutputPath decides where matches are written. When output names an
// existing directory, the file name is derived from the scanned log and the
// current time as parsed_<base>_<YYYYMMDD>_<secondsFromMidnight>.log inside
// that directory. Anything else is used verbatim as a file path.
func ResolveOutputPath(clk clock.Clock, output, logPath string) string {
	info, err := os.Stat(output)
	if err != nil || !info.IsDir() {
		return output
	}

	base := filepath.Base(logPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	now := clk.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	seconds := int(now.Sub(midnight).Seconds())

	name := fmt.Sprintf("parsed_%s_%s_%d.log", base, now.Format("20060102"), seconds)
	return filepath.Join(output, name)
}
