package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	summaryFrom      = os.Getenv("SUMMARY_FROM") // sender email
	summaryTo        = os.Getenv("SUMMARY_TO")   // receiver email
	smtpServer       = os.Getenv("SMTP_SERVER")  // smtp.example.com
	smtpPort         = os.Getenv("SMTP_PORT")    // e.g., 587
	smtpUser         = os.Getenv("SMTP_USER")
	smtpPassword     = os.Getenv("SMTP_PASS")
	smtpAuthDisabled = os.Getenv("SMTP_AUTH_DISABLED")

	rdb *redis.Client
	ctx context.Context
)

// SetRedisClient wires the Redis client used for the critical-alert log.
func SetRedisClient(client *redis.Client, c context.Context) {
	rdb = client
	ctx = c
}

// CriticalAlertEntry is one spoilage alert recorded for the daily digest.
type CriticalAlertEntry struct {
	Alert string    `json:"alert"`
	Time  time.Time `json:"time"`
}

const DailyCriticalLogKey = "alerts:critical:daily"

// LogCriticalAlert appends a spoilage alert to the daily digest log.
// No-op when Redis is not configured.
func LogCriticalAlert(alert string) {
	if rdb == nil {
		return
	}
	entry := CriticalAlertEntry{Alert: alert, Time: time.Now()}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyCriticalLogKey, data).Err()
}

// StartDailySpoilageSummary periodically emails a digest of the
// critical alerts collected since the previous digest, then clears the
// log. Intended to run as a background goroutine from main.
func StartDailySpoilageSummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		if err := sendSpoilageSummary(); err != nil {
			log.Printf("notify: daily summary failed: %v", err)
		}
	}
}

func sendSpoilageSummary() error {
	if rdb == nil {
		return nil
	}

	raw, err := rdb.LRange(ctx, DailyCriticalLogKey, 0, -1).Result()
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	var lines []string
	for _, item := range raw {
		var entry CriticalAlertEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s", entry.Time.Format(time.RFC3339), entry.Alert))
	}

	subject := fmt.Sprintf("Spoilage summary: %d critical alert(s)", len(lines))
	body := strings.Join(lines, "\n")
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", summaryFrom, summaryTo, subject, body)

	addr := fmt.Sprintf("%s:%s", smtpServer, smtpPort)
	auth := smtp.PlainAuth("", smtpUser, smtpPassword, smtpServer)
	if smtpAuthDisabled != "" {
		auth = nil
	}

	if err := smtp.SendMail(addr, auth, summaryFrom, []string{summaryTo}, []byte(msg)); err != nil {
		return err
	}

	return rdb.Del(ctx, DailyCriticalLogKey).Err()
}
