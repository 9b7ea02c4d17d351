package app

import (
	"context"
	"log"
	"time"

	"backoffice-api/internal/service"

	"github.com/robfig/cron/v3"
)

// startContractExpiry marks overdue Active contracts as Expired on the given
// cron schedule. The caller stops the returned scheduler.
func startContractExpiry(schedule string, contracts service.Contract) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		expireContracts(context.Background(), contracts, time.Now())
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[cron] contract expiry scheduled at %q", schedule)

	return c, nil
}

func expireContracts(ctx context.Context, contracts service.Contract, now time.Time) {
	n, err := contracts.ExpireContracts(ctx, now)
	if err != nil {
		log.Println("[cron] Error:", err)
		return
	}
	log.Printf("[cron] %d contracts expired", n)
}
