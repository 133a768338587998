package vital

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// LinkCache memoizes link listings per category. A listing is populated
// at most once per process lifetime; concurrent requests for the same
// category share one upstream call via singleflight. Failed populations
// are not cached, so a later request retries.
//
// The zero value is ready to use.
type LinkCache struct {
	mu    sync.Mutex
	links map[string][]string
	group singleflight.Group
}

// GetOrPopulate returns the cached links for key, calling populate to
// fill the cache on a miss.
func (c *LinkCache) GetOrPopulate(key string, populate func() ([]string, error)) ([]string, error) {
	c.mu.Lock()
	if links, ok := c.links[key]; ok {
		c.mu.Unlock()
		return links, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		if links, ok := c.links[key]; ok {
			c.mu.Unlock()
			return links, nil
		}
		c.mu.Unlock()

		links, err := populate()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.links == nil {
			c.links = make(map[string][]string)
		}
		c.links[key] = links
		c.mu.Unlock()
		return links, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// Len reports how many categories are populated.
func (c *LinkCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.links)
}
