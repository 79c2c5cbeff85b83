package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-mcp-bridge/internal/domain"
	"github.com/robfig/cron/v3"
)

// CatalogRefresher periodically rediscovers the tool server so tools added or removed
// remotely show up without a restart. It is disabled when MCP_REFRESH_SCHEDULE is unset.
type CatalogRefresher struct {
	ToolServer          domain.ToolServer `resolve:""`
	Logger              *log.Logger       `resolve:""`
	Schedule            string            `config:"MCP_REFRESH_SCHEDULE" default:"-"`
	schedule            cron.Schedule
	workerExecutionChan chan struct{}
}

// Run schedules the refresh job and blocks until ctx is done.
func (cr CatalogRefresher) Run(ctx context.Context) error {
	schedule, err := cr.parseSchedule()
	if err != nil {
		return err
	}
	if schedule == nil {
		cr.Logger.Println("CatalogRefresher: MCP_REFRESH_SCHEDULE not set, catalog refresh disabled")
		<-ctx.Done()
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(schedule, cron.FuncJob(func() { cr.refresh(ctx) }))

	cr.Logger.Printf("CatalogRefresher: running with schedule %q", cr.Schedule)
	c.Start()

	<-ctx.Done()
	cr.Logger.Println("CatalogRefresher: stopping...")
	<-c.Stop().Done()
	return nil
}

func (cr CatalogRefresher) refresh(ctx context.Context) {
	before := cr.ToolServer.Catalog(ctx).Len()
	if err := cr.ToolServer.Reconnect(ctx); err != nil {
		cr.Logger.Printf("CatalogRefresher: rediscovery failed: %v", err)
	} else {
		cr.Logger.Printf("CatalogRefresher: catalog refreshed (%d -> %d tools)", before, cr.ToolServer.Catalog(ctx).Len())
	}
	if cr.workerExecutionChan != nil {
		cr.workerExecutionChan <- struct{}{}
	}
}

func (cr CatalogRefresher) parseSchedule() (cron.Schedule, error) {
	if cr.schedule != nil {
		return cr.schedule, nil
	}
	if cr.Schedule == "-" || cr.Schedule == "" {
		return nil, nil
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cr.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid MCP_REFRESH_SCHEDULE %q: %w", cr.Schedule, err)
	}
	return schedule, nil
}
