package http

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ghassen-kharrat/portfolio/internal/shell"
)

// memPersister is an in-memory preference persister for handler tests.
type memPersister struct {
	mu     sync.Mutex
	values map[string]map[string]string
}

func newMemPersister() *memPersister {
	return &memPersister{values: make(map[string]map[string]string)}
}

func (m *memPersister) Get(visitorID, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[visitorID][key], nil
}

func (m *memPersister) GetAll(visitorID string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values[visitorID]))
	for k, v := range m.values[visitorID] {
		out[k] = v
	}
	return out, nil
}

func (m *memPersister) Set(visitorID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values[visitorID] == nil {
		m.values[visitorID] = make(map[string]string)
	}
	m.values[visitorID][key] = value
	return nil
}

func (m *memPersister) Delete(visitorID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values[visitorID], key)
	return nil
}

// testShellRouter builds a router whose shell middleware binds every request
// to a single test visitor, without cookies or a real session store.
func testShellRouter(visitorID string) (*gin.Engine, *shell.Manager) {
	gin.SetMode(gin.TestMode)

	shells := shell.NewManager(newMemPersister())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		sess := shells.Get(visitorID, "")
		c.Set(visitorIDContextKey, visitorID)
		c.Set(shellContextKey, sess)
		c.Next()
	})
	return router, shells
}
