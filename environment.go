package tracepub

import (
	"sync"

	"github.com/mongodb/amboy"
	"github.com/mongodb/amboy/queue"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
)

var globalEnv *envState

func init()                       { resetEnv() }
func GetEnvironment() Environment { return globalEnv }

func resetEnv() { globalEnv = &envState{name: "global", conf: &PublisherConfig{}} }

// Environment objects provide access to shared configuration and state,
// in a way that you can isolate and test for in
type Environment interface {
	Configure(*PublisherConfig) error

	// GetQueue retrieves the application's shared queue, which is cache
	// for easy access from within units or inside of requests or command
	// line operations
	GetQueue() (amboy.Queue, error)
	// SetQueue configures the global application cache's shared queue.
	SetQueue(amboy.Queue) error

	GetConf() (*PublisherConfig, error)
}

type envState struct {
	name  string
	queue amboy.Queue
	conf  *PublisherConfig
	mutex sync.RWMutex
}

func (c *envState) Configure(conf *PublisherConfig) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if err := conf.Validate(); err != nil {
		return errors.WithStack(err)
	}

	c.conf = conf
	c.queue = queue.NewLocalLimitedSize(conf.NumWorkers, QueueSizeCap)
	grip.Infof("configured local queue with %d workers", conf.NumWorkers)

	return nil
}

func (c *envState) SetQueue(q amboy.Queue) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.queue != nil {
		return errors.New("queue exists, cannot overwrite")
	}

	if q == nil {
		return errors.New("cannot set queue to nil")
	}

	c.queue = q
	grip.Noticef("caching a '%T' queue in the '%s' service cache for use in tasks", q, c.name)
	return nil
}

func (c *envState) GetQueue() (amboy.Queue, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.queue == nil {
		return nil, errors.New("no queue defined in the service cache")
	}

	return c.queue, nil
}

func (c *envState) GetConf() (*PublisherConfig, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.conf == nil {
		return nil, errors.New("configuration is not set")
	}

	return c.conf, nil
}
