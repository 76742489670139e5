// Package cache provides a small thread-safe cache with a soft entry limit.
//
// When the limit is exceeded the least recently used quarter of the entries
// is evicted. The asset catalog uses it to keep decoded, downsized emoji
// images keyed by asset id and maximum size:
//
//	c := cache.New[glyphKey, image.Image](256)
//	img, err := c.GetOrLoad(key, func() (image.Image, error) { ... })
package cache
