package session

import (
	"sync"

	"github.com/lyraproj/subst/subst"
)

// TemplateCache maps source strings to compiled templates. It is safe for concurrent use.
type TemplateCache struct {
	lock     sync.RWMutex
	capacity int

	// values are *subst.Template or, while a template is being produced, a locked *sync.RWMutex
	values map[string]interface{}
}

// NewTemplateCache creates a cache that holds at most capacity templates. A capacity
// less than or equal to zero means no limit.
func NewTemplateCache(capacity int) *TemplateCache {
	initial := capacity
	if initial <= 0 || initial > 64 {
		initial = 64
	}
	return &TemplateCache{capacity: capacity, values: make(map[string]interface{}, initial)}
}

// Compile returns the cached template for the given source, compiling it when needed
func (c *TemplateCache) Compile(source string) *subst.Template {
	return c.EnsureSet(source, func() *subst.Template {
		return subst.Compile(source)
	})
}

// EnsureSet returns the template for the given source if it is set. Otherwise it calls the
// producer and, unless the cache is full, stores the produced template. Concurrent calls for
// the same source wait for the first producer instead of calling their own.
//
// The producer does not execute within the cache lock.
func (c *TemplateCache) EnsureSet(source string, producer func() *subst.Template) *subst.Template {
	c.lock.Lock()
	if t, ok := c.valueMutexWait(source); ok {
		c.lock.Unlock()
		return t
	}
	if c.capacity > 0 && len(c.values) >= c.capacity {
		c.lock.Unlock()
		return producer()
	}

	// Replace the value with a RWMutex that is locked.
	lock := &sync.RWMutex{}
	lock.Lock()
	c.values[source] = lock
	c.lock.Unlock()

	var t *subst.Template
	defer func() {
		c.lock.Lock()
		if t == nil {
			delete(c.values, source)
		} else {
			c.values[source] = t
		}
		lock.Unlock()
		c.lock.Unlock()
	}()
	t = producer()
	return t
}

// valueMutexWait must be called with the write lock held
func (c *TemplateCache) valueMutexWait(source string) (*subst.Template, bool) {
	for {
		v, ok := c.values[source]
		if !ok {
			return nil, false
		}
		if l, isLock := v.(*sync.RWMutex); isLock {
			// The template is being produced. Wait until it's released
			c.lock.Unlock()
			l.RLock()
			c.lock.Lock()
			l.RUnlock()
			continue
		}
		return v.(*subst.Template), true
	}
}

// Get returns the template for the given source together with a bool to indicate if it was found
func (c *TemplateCache) Get(source string) (*subst.Template, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.valueMutexWait(source)
}

// Len returns the number of templates in the cache
func (c *TemplateCache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	n := 0
	for _, v := range c.values {
		if _, ok := v.(*subst.Template); ok {
			n++
		}
	}
	return n
}
