package svc

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/droverlabs/drover/internal/browser"
	"github.com/droverlabs/drover/internal/config"
	"github.com/droverlabs/drover/internal/db"
	"github.com/droverlabs/drover/internal/logging"
)

// ServiceContext carries everything the handlers need. Constructed once at
// startup and closed once on shutdown; no ambient globals.
type ServiceContext struct {
	Config config.Config
	Worker *browser.Worker
	DB     *db.Store

	cron *cron.Cron
}

// NewServiceContext creates a new service context. Pass a *db.Store to reuse
// an existing database connection, or nil to create a new one.
func NewServiceContext(c config.Config, database ...*db.Store) *ServiceContext {
	var db0 *db.Store
	if len(database) > 0 {
		db0 = database[0]
	}
	return newServiceContext(c, db0)
}

func newServiceContext(c config.Config, database *db.Store) *ServiceContext {
	svc := &ServiceContext{
		Config: c,
		Worker: browser.NewWorker(browser.Options{
			StoragePath:     c.Browser.StoragePath,
			Headless:        c.IsHeadless(),
			NavTimeout:      time.Duration(c.Browser.NavTimeoutMs) * time.Millisecond,
			WaitTimeout:     time.Duration(c.Browser.WaitTimeoutMs) * time.Millisecond,
			SelectorTimeout: time.Duration(c.Browser.SelectorTimeoutMs) * time.Millisecond,
		}),
	}
	logging.Info("Browser worker created")

	// Use provided database or create new one. A broken database disables
	// the task audit trail but never blocks automation.
	if database != nil {
		svc.DB = database
		logging.Info("Using shared database connection")
	} else {
		store, err := db.NewSQLite(c.Database.SQLitePath)
		if err != nil {
			logging.Errorf("Failed to initialize SQLite database: %v", err)
		} else {
			svc.DB = store
		}
	}

	if c.IsAutosaveEnabled() {
		svc.cron = cron.New()
		_, err := svc.cron.AddFunc(c.Autosave.Schedule, func() {
			if err := svc.Worker.SaveStorage(); err != nil {
				logging.Warnf("Session autosave failed: %v", err)
			}
		})
		if err != nil {
			logging.Errorf("Invalid autosave schedule %q: %v", c.Autosave.Schedule, err)
			svc.cron = nil
		} else {
			svc.cron.Start()
			logging.Infof("Session autosave scheduled (%s)", c.Autosave.Schedule)
		}
	}

	return svc
}

// Close stops the autosave schedule, saves the browsing session one last
// time, and releases the browser and database.
func (svc *ServiceContext) Close() {
	if svc.cron != nil {
		<-svc.cron.Stop().Done()
	}
	if err := svc.Worker.SaveStorage(); err != nil {
		logging.Warnf("Final session save failed: %v", err)
	}
	if err := svc.Worker.Close(); err != nil {
		logging.Warnf("Browser shutdown failed: %v", err)
	}
	if svc.DB != nil {
		svc.DB.Close()
		logging.Info("SQLite database connection closed")
	}
	logging.Info("Service context closed")
}
