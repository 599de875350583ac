package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/smtp"
	"time"

	"gymflow/internal/ledger"
	"gymflow/internal/logger"
	"gymflow/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "notifications"
	failedQueueKey = "notifications:failed"
	maxTries       = 3
)

const (
	TypeConfirmation = "confirmation"
	TypeWaitlist     = "waitlist"
	TypePromotion    = "promotion"
	TypeCancellation = "cancellation"
)

type Job struct {
	Type    string    `json:"type"`
	UserID  string    `json:"user_id"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Sender delivers a single job. The default implementation speaks SMTP.
type Sender interface {
	Send(job Job) error
}

type SMTPConfig struct {
	From     string
	FromName string
	Host     string
	Port     string
	User     string
	Pass     string
}

type smtpSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(job Job) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.cfg.User != "" && s.cfg.Pass != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	return smtp.SendMail(addr, auth, s.cfg.From, []string{job.To}, []byte(message))
}

// Service queues member notifications in Redis and delivers them from a worker loop.
type Service struct {
	redis       *redis.Client
	sender      Sender
	emailDomain string
	retryDelay  time.Duration
	pollTimeout time.Duration
	errBackoff  time.Duration
}

func New(rdb *redis.Client, sender Sender, emailDomain string) *Service {
	return &Service{
		redis:       rdb,
		sender:      sender,
		emailDomain: emailDomain,
		retryDelay:  5 * time.Second,
		pollTimeout: 2 * time.Second,
		errBackoff:  3 * time.Second,
	}
}

// Address derives the mailbox of a member from its id.
func (s *Service) Address(userID string) string {
	return userID + "@" + s.emailDomain
}

func (s *Service) enqueue(ctx context.Context, job Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		metrics.RecordNotification(job.Type, "queue_failed")
		return fmt.Errorf("failed to queue notification to %s: %w", job.To, err)
	}

	metrics.RecordNotification(job.Type, "queued")
	logger.Debug("Notification queued", "type", job.Type, "to", job.To)
	return nil
}

func (s *Service) Send(ctx context.Context, notificationType, userID, name, subject, body string) error {
	return s.enqueue(ctx, Job{
		Type:    notificationType,
		UserID:  userID,
		To:      s.Address(userID),
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

func (s *Service) SendBookingConfirmation(ctx context.Context, userID, name, className, slot string) error {
	subject := "Booking Confirmed - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking is confirmed!

Class: %s
When: %s

A reminder will be sent 24 hours before the class.

- GymFlow Pro`, name, className, slot)

	return s.Send(ctx, TypeConfirmation, userID, name, subject, body)
}

func (s *Service) SendWaitlistNotice(ctx context.Context, userID, name, className, slot string, position int) error {
	subject := "Waitlist - " + className
	body := fmt.Sprintf(`Hi %s,

%s is full. You are number %d on the waitlist:

When: %s

We will let you know as soon as a spot frees up.

- GymFlow Pro`, name, className, position, slot)

	return s.Send(ctx, TypeWaitlist, userID, name, subject, body)
}

func (s *Service) SendPromotion(ctx context.Context, userID, name, className, slot string) error {
	subject := "You're in! - " + className
	body := fmt.Sprintf(`Hi %s,

A spot opened up and your waitlist booking is now confirmed:

Class: %s
When: %s

- GymFlow Pro`, name, className, slot)

	return s.Send(ctx, TypePromotion, userID, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, userID, name, className, slot string) error {
	subject := "Booking Cancelled - " + className
	body := fmt.Sprintf(`Hi %s,

Your booking has been cancelled:

Class: %s
When: %s

- GymFlow Pro`, name, className, slot)

	return s.Send(ctx, TypeCancellation, userID, name, subject, body)
}

// HandleEvent turns a ledger event into the matching member notification.
func (s *Service) HandleEvent(ctx context.Context, ev ledger.Event) error {
	when := ledger.DayName(ev.Day) + " " + ledger.FormatHour(ev.Start)

	name := ev.UserName
	if name == "" {
		name = ledger.DefaultUserName
	}

	switch ev.Type {
	case ledger.EventBooked:
		return s.SendBookingConfirmation(ctx, ev.UserID, name, ev.ClassName, when)
	case ledger.EventWaitlisted:
		return s.SendWaitlistNotice(ctx, ev.UserID, name, ev.ClassName, when, ev.Position)
	case ledger.EventPromoted:
		return s.SendPromotion(ctx, ev.UserID, name, ev.ClassName, when)
	case ledger.EventCancelled:
		return s.SendCancellation(ctx, ev.UserID, name, ev.ClassName, when)
	}
	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Notification worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, s.pollTimeout, queueKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) || ctx.Err() != nil {
			return
		}
		logger.Warn("Notification queue unavailable", "error", err, "retry_in", s.errBackoff)
		sleep(ctx, s.errBackoff)
		return
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("Bad notification payload", "error", err)
		return
	}

	job.Tries++
	if err := s.sender.Send(job); err != nil {
		logger.Error("Failed to deliver notification", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			sleep(ctx, s.retryDelay)
			s.requeue(job)
			return
		}

		metrics.RecordNotification(job.Type, "failed")
		s.saveFailed(job, err)
		return
	}

	metrics.RecordNotification(job.Type, "sent")
	logger.Info("Notification delivered", "type", job.Type, "to", job.To)
}

// requeue runs on a fresh context so a shutdown in progress does not drop the job.
func (s *Service) requeue(job Job) {
	data, err := json.Marshal(job)
	if err != nil {
		metrics.RecordNotification(job.Type, "lost")
		logger.Error("Failed to marshal notification for retry", "to", job.To, "error", err)
		return
	}

	if err := s.redis.LPush(context.Background(), queueKey, string(data)).Err(); err != nil {
		metrics.RecordNotification(job.Type, "lost")
		logger.Error("Failed to requeue notification", "to", job.To, "attempt", job.Tries, "error", err)
		return
	}

	logger.Warn("Notification requeued", "to", job.To, "attempt", job.Tries)
}

func (s *Service) saveFailed(job Job, cause error) {
	failed := map[string]any{
		"job":   job,
		"error": cause.Error(),
		"time":  time.Now(),
	}
	data, err := json.Marshal(failed)
	if err != nil {
		metrics.RecordNotification(job.Type, "lost")
		logger.Error("Failed to marshal failed notification", "to", job.To, "error", err)
		return
	}

	if err := s.redis.LPush(context.Background(), failedQueueKey, string(data)).Err(); err != nil {
		metrics.RecordNotification(job.Type, "lost")
		logger.Error("Failed to store failed notification", "to", job.To, "tries", job.Tries, "error", err)
		return
	}
	logger.Error("Notification moved to failed queue", "to", job.To, "tries", job.Tries)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.SetNotificationQueueLength(length)
	return length
}

// Ping checks that the queue is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach notification queue: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.redis.Close()
}
