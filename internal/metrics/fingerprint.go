package metrics

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// fingerprintLen is the number of hex characters kept from the digest. Twelve
// characters (48 bits) is plenty for grouping a result tree; this is not a
// security boundary.
const fingerprintLen = 12

// Fingerprint returns a stable identifier for a context. Equal contexts
// always produce the same fingerprint regardless of map iteration order,
// because the serialization is key-sorted before hashing.
func Fingerprint(ctx Context) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(ctx[k].canonical())
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}
