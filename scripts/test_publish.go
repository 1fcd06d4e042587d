// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// reportEvent повторяет формат событий, которые сервис пишет в стрим
type reportEvent struct {
	Type       string    `json:"type"`
	ReportID   string    `json:"report_id"`
	ReportType string    `json:"report_type,omitempty"`
	Upvotes    int       `json:"upvotes"`
	SessionID  string    `json:"session_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stream := flag.String("stream", "stream:report:events", "Report events stream")
	tail := flag.Duration("tail", 10*time.Second, "How long to print events after publishing")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	reportID, err := uuid.NewV7()
	if err != nil {
		log.Fatalf("Failed to generate report id: %v", err)
	}

	// Тестовое событие: новый отчёт в Balagtas
	event := reportEvent{
		Type:       "report.created",
		ReportID:   reportID.String(),
		ReportType: "no-security",
		SessionID:  uuid.NewString(),
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: *stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", *stream)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Report ID: %s\n", event.ReportID)

	// Печатаем всё, что появляется в стриме после нашего события
	fmt.Printf("\nTailing %s for %s...\n", *stream, *tail)

	tailCtx, cancel := context.WithTimeout(ctx, *tail)
	defer cancel()

	lastID := result
	for {
		results, err := client.XRead(tailCtx, &redis.XReadArgs{
			Streams: []string{*stream, lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if tailCtx.Err() != nil {
			fmt.Println("Done")
			return
		}
		if err != nil && err != redis.Nil {
			log.Printf("Read failed: %v", err)
			continue
		}

		for _, s := range results {
			for _, msg := range s.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}

				var received reportEvent
				if err := json.Unmarshal([]byte(dataStr), &received); err != nil {
					fmt.Printf("%s: malformed event: %v\n", msg.ID, err)
					continue
				}
				fmt.Printf("%s: %s report=%s type=%s upvotes=%d\n",
					msg.ID, received.Type, received.ReportID, received.ReportType, received.Upvotes)
			}
		}
	}
}
