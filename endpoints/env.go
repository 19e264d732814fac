package endpoints

import (
	"github.com/mariokirby1703/pemon-information-table/levels"
	"github.com/mariokirby1703/pemon-information-table/view"
	"time"
)

// Env is what the handlers share.
type Env struct {
	Views       *view.Registry
	Fetcher     levels.Fetcher
	DefaultList string
	SessionTTL  time.Duration
}
