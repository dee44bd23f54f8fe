package snake

import "github.com/iburimskiy/ouroboros/internal/config"

// Hit reports whether screen point p lies on the cached head.
func Hit(h HeadCache, p Vec) bool {
	if !h.Valid() {
		return false
	}
	return p.Dist(h.Centroid) < config.HitRadiusFactor*h.BodyRadius
}
