package notify

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"gymflow/internal/ledger"
	"gymflow/internal/logger"
	"gymflow/internal/metrics"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type fakeSender struct {
	jobs []Job
	err  error
}

func (f *fakeSender) Send(job Job) error {
	f.jobs = append(f.jobs, job)
	return f.err
}

func newTestService(rdb *redis.Client, sender Sender) *Service {
	svc := New(rdb, sender, "members.test")
	svc.retryDelay = 0
	return svc
}

func TestAddress(t *testing.T) {
	db, _ := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})

	assert.Equal(t, "current-user@members.test", svc.Address("current-user"))
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db, &fakeSender{})

	err := svc.Send(ctx, TypeConfirmation, "alice", "Alice", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db, &fakeSender{})

	err := svc.Send(ctx, TypeConfirmation, "alice", "Alice", "Hello", "Test body")
	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   ledger.Event
	}{
		{name: "booked", ev: ledger.Event{Type: ledger.EventBooked, ClassName: "Pilates", Day: 1, Start: 9, UserID: "alice", UserName: "Alice"}},
		{name: "waitlisted", ev: ledger.Event{Type: ledger.EventWaitlisted, ClassName: "Zumba", Day: 5, Start: 9, UserID: "alice", Position: 4}},
		{name: "promoted", ev: ledger.Event{Type: ledger.EventPromoted, ClassName: "CrossFit", Day: 0, Start: 18, UserID: "user1"}},
		{name: "cancelled", ev: ledger.Event{Type: ledger.EventCancelled, ClassName: "Boxing", Day: 1, Start: 17, UserID: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

			svc := newTestService(db, &fakeSender{})

			err := svc.HandleEvent(context.Background(), tt.ev)
			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandleEvent_UnknownTypeIsIgnored(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})

	err := svc.HandleEvent(context.Background(), ledger.Event{Type: "other"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func queuedPayload(t *testing.T, job Job) string {
	t.Helper()
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return string(data)
}

func TestProcessNext_Delivers(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{}
	svc := newTestService(db, sender)

	job := Job{Type: TypePromotion, UserID: "user1", To: "user1@members.test", Subject: "You're in!", Created: time.Now()}
	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, queuedPayload(t, job)})

	svc.processNext(context.Background())

	require.Len(t, sender.jobs, 1)
	assert.Equal(t, "user1@members.test", sender.jobs[0].To)
	assert.Equal(t, 1, sender.jobs[0].Tries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_RequeuesOnFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := newTestService(db, sender)

	job := Job{Type: TypeConfirmation, UserID: "alice", To: "alice@members.test"}
	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, queuedPayload(t, job)})
	mock.Regexp().ExpectLPush(queueKey, `"tries":1`).SetVal(1)

	svc.processNext(context.Background())

	assert.Len(t, sender.jobs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_MovesToFailedQueue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := newTestService(db, sender)

	job := Job{Type: TypeConfirmation, UserID: "alice", To: "alice@members.test", Tries: maxTries - 1}
	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, queuedPayload(t, job)})
	mock.Regexp().ExpectLPush(failedQueueKey, `smtp down`).SetVal(1)

	svc.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_BadPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{}
	svc := newTestService(db, sender)

	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, "{broken"})

	svc.processNext(context.Background())

	assert.Empty(t, sender.jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_IdlePollDoesNotBackOff(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})
	svc.errBackoff = time.Hour

	mock.ExpectBRPop(svc.pollTimeout, queueKey).RedisNil()

	done := make(chan struct{})
	go func() {
		svc.processNext(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("empty poll should return immediately")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_BacksOffWhenQueueUnavailable(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{}
	svc := newTestService(db, sender)
	svc.errBackoff = 50 * time.Millisecond

	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetErr(errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"))

	start := time.Now()
	svc.processNext(context.Background())

	assert.GreaterOrEqual(t, time.Since(start), svc.errBackoff)
	assert.Empty(t, sender.jobs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_BackoffEndsOnCancel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})
	svc.errBackoff = time.Hour

	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetErr(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan struct{})
	go func() {
		svc.processNext(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("backoff did not stop after context cancellation")
	}
}

func TestProcessNext_RequeueErrorIsCounted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := newTestService(db, sender)

	lost := metrics.NotificationsTotal.WithLabelValues(TypeCancellation, "lost")
	before := testutil.ToFloat64(lost)

	job := Job{Type: TypeCancellation, UserID: "alice", To: "alice@members.test"}
	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, queuedPayload(t, job)})
	mock.Regexp().ExpectLPush(queueKey, `"tries":1`).SetErr(errors.New("connection reset"))

	svc.processNext(context.Background())

	assert.Equal(t, before+1, testutil.ToFloat64(lost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_FailedQueueErrorIsCounted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	sender := &fakeSender{err: errors.New("smtp down")}
	svc := newTestService(db, sender)

	lost := metrics.NotificationsTotal.WithLabelValues(TypeWaitlist, "lost")
	before := testutil.ToFloat64(lost)

	job := Job{Type: TypeWaitlist, UserID: "alice", To: "alice@members.test", Tries: maxTries - 1}
	mock.ExpectBRPop(svc.pollTimeout, queueKey).SetVal([]string{queueKey, queuedPayload(t, job)})
	mock.Regexp().ExpectLPush(failedQueueKey, `smtp down`).SetErr(errors.New("connection reset"))

	svc.processNext(context.Background())

	assert.Equal(t, before+1, testutil.ToFloat64(lost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, svc.Ping(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	err := svc.Ping(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach notification queue")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(5)

	svc := newTestService(db, &fakeSender{})

	assert.Equal(t, int64(5), svc.QueueLength(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStart_StopsOnCancel(t *testing.T) {
	db, _ := redismock.NewClientMock()
	svc := newTestService(db, &fakeSender{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
