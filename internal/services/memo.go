package services

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// CacheKey derives a deterministic memoization key from the immutable
// request inputs. Identical inputs always produce identical results (the
// engine is pure), so the key is safe to use for external caching and as
// the snapshot identity.
func CacheKey(req BuildableAreaRequest) string {
	var b strings.Builder

	for _, c := range req.SiteCoordinates {
		fmt.Fprintf(&b, "%.9f,%.9f;", c.Lon, c.Lat)
	}
	fmt.Fprintf(&b, "|%.4f,%.4f,%.4f", req.Requirements.FrontM, req.Requirements.SideM, req.Requirements.RearM)
	fmt.Fprintf(&b, "|%s", strings.ToLower(string(req.Frontage)))
	for _, c := range req.Classifications {
		if c.SetbackM != nil {
			fmt.Fprintf(&b, "|%d:%s:%.4f", c.Index, c.Role, *c.SetbackM)
		} else {
			fmt.Fprintf(&b, "|%d:%s", c.Index, c.Role)
		}
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
