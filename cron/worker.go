package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"stayfront/config"
	"stayfront/services/popular"

	"github.com/hibiken/asynq"
)

const TypePopularRefresh = "popular:refresh"

// InitPopularWorker runs the async worker and its periodic schedule in
// the background.
func InitPopularWorker(popularSvc popular.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePopularRefresh, handlePopularRefresh(popularSvc))

	go func() {
		log.Println("[PopularWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PopularWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PopularWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func handlePopularRefresh(popularSvc popular.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if err := popularSvc.Refresh(ctx); err != nil {
			log.Printf("[PopularWorker] refresh failed: %v", err)
			return err
		}
		return nil
	}
}

// runScheduler enqueues the refresh task on the configured interval.
func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	interval := config.AppConfig.PopularRefreshMinutes
	if interval <= 0 {
		interval = 360
	}
	spec := fmt.Sprintf("@every %dm", interval)

	if _, err := scheduler.Register(spec, asynq.NewTask(TypePopularRefresh, nil)); err != nil {
		log.Printf("[PopularWorker] failed to register schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[PopularWorker] scheduler stopped: %v", err)
	}
}
