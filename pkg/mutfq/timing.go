// 19 Oct 2026

package mutfq

import (
	"fmt"
	"time"
)

// FmtElapsed gives a time in the biggest sensible unit, truncated.
// Beyond ten minutes, we do not bother with seconds.
func FmtElapsed(info string, d time.Duration) string {
	switch {
	case d >= 10*time.Minute:
		return fmt.Sprintf("%s: %d (min)", info, d/time.Minute)
	case d >= time.Second:
		return fmt.Sprintf("%s: %d (s)", info, d/time.Second)
	case d >= time.Millisecond:
		return fmt.Sprintf("%s: %d (ms)", info, d/time.Millisecond)
	case d >= time.Microsecond:
		return fmt.Sprintf("%s: %d (us)", info, d/time.Microsecond)
	}
	return fmt.Sprintf("%s: %d (ns)", info, int64(d))
}
