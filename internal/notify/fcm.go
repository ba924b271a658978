package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// FCMNotifier sends push notifications through the FCM HTTP v1 API.
type FCMNotifier struct {
	endpoint    string
	bearerToken string
	client      *http.Client
}

func NewFCMNotifier(endpoint, bearerToken string) *FCMNotifier {
	return &FCMNotifier{
		endpoint:    endpoint,
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type fcmMessage struct {
	Message struct {
		Token        string `json:"token"`
		Notification struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		} `json:"notification"`
	} `json:"message"`
}

func (n *FCMNotifier) Send(token, title, body string) error {
	var msg fcmMessage
	msg.Message.Token = token
	msg.Message.Notification.Title = title
	msg.Message.Notification.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.bearerToken)

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("fcm responded with status %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier writes notifications to the process log instead of
// delivering them. Used when no FCM endpoint is configured.
type LogNotifier struct{}

func (LogNotifier) Send(token, title, body string) error {
	log.Printf("notify (dry-run) token=%s title=%q body=%q", token, title, body)
	return nil
}
