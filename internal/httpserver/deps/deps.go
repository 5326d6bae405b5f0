package deps

import (
	"time"

	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/index"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
	"github.com/MrSnakeDoc/linkdeck/internal/sources/defaults"
	redisstore "github.com/MrSnakeDoc/linkdeck/internal/store/redis"
	"github.com/MrSnakeDoc/linkdeck/internal/version"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Build         version.Info
	TimeNow       func() time.Time      // for testing, defaults to time.Now
	Store         *redisstore.BlockStore
	Cache         *index.RenderCache    // revision-tagged render cache
	Defaults      *defaults.Set         // locked-block defaults (empty when no defaults file)
	Sessions      *editor.Registry      // open edit sessions
	EditorToken   string                // bearer token guarding the edit endpoints
	ReloadTrigger chan struct{}         // channel to trigger a manual defaults reload (nil if disabled)
}
