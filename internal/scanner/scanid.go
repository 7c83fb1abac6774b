package scanner

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// ScanID builds the unique scan identifier: FRAI-<unix_ts>-<8 hex chars>,
// where the suffix is derived from the address and timestamp.
func ScanID(address string, at time.Time) string {
	ts := at.Unix()
	sum := md5.Sum([]byte(fmt.Sprintf("%s%d", address, ts)))
	return fmt.Sprintf("FRAI-%d-%s", ts, hex.EncodeToString(sum[:4]))
}
