package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caseboard/internal/adapters/email"
	activitylogStore "caseboard/internal/adapters/storage/activitylog"
	"caseboard/internal/domain/activitylog"
	"caseboard/internal/domain/checkin"
	"caseboard/internal/domain/client"
	"caseboard/internal/domain/intervention"
	"caseboard/internal/domain/note"
	grid "caseboard/internal/domain/schedulegrid"
)

// fixedNow returns a deterministic clock for tests.
func fixedNow() time.Time {
	return time.Date(2026, 8, 24, 9, 30, 0, 0, time.UTC)
}

// newFixedID returns a deterministic ID generator: id-1, id-2, ...
func newFixedID() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var errNotFound = errors.New("not found")

type mockClientStore struct {
	clients map[string]client.Client
	saveErr error
}

func newMockClientStore(clients ...client.Client) *mockClientStore {
	m := &mockClientStore{clients: make(map[string]client.Client)}
	for _, c := range clients {
		m.clients[c.ID] = c
	}
	return m
}

func (m *mockClientStore) GetByID(_ context.Context, id string) (client.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return client.Client{}, errNotFound
	}
	return c, nil
}

func (m *mockClientStore) Save(_ context.Context, c client.Client) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.clients[c.ID] = c
	return nil
}

func (m *mockClientStore) List(_ context.Context) ([]client.Client, error) {
	var out []client.Client
	for _, c := range m.clients {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockClientStore) ListByStatus(_ context.Context, status string) ([]client.Client, error) {
	var out []client.Client
	for _, c := range m.clients {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClientStore) SearchByName(_ context.Context, _ string, _ int) ([]client.Client, error) {
	return m.List(context.Background())
}

type mockCheckInStore struct {
	saved  []checkin.CheckIn
	exists bool
}

func (m *mockCheckInStore) Save(_ context.Context, c checkin.CheckIn) error {
	m.saved = append(m.saved, c)
	return nil
}

func (m *mockCheckInStore) ListByClientID(_ context.Context, _ string) ([]checkin.CheckIn, error) {
	return m.saved, nil
}

func (m *mockCheckInStore) ListByDay(_ context.Context, _ string) ([]checkin.CheckIn, error) {
	return m.saved, nil
}

func (m *mockCheckInStore) ExistsForClientOnDay(_ context.Context, _, _ string) (bool, error) {
	return m.exists, nil
}

type mockInterventionStore struct {
	saved []intervention.Intervention
}

func (m *mockInterventionStore) GetByID(_ context.Context, id string) (intervention.Intervention, error) {
	for _, iv := range m.saved {
		if iv.ID == id {
			return iv, nil
		}
	}
	return intervention.Intervention{}, errNotFound
}

func (m *mockInterventionStore) Save(_ context.Context, iv intervention.Intervention) error {
	m.saved = append(m.saved, iv)
	return nil
}

func (m *mockInterventionStore) ListByClientID(_ context.Context, _ string) ([]intervention.Intervention, error) {
	return m.saved, nil
}

func (m *mockInterventionStore) ListByStatus(_ context.Context, _ string) ([]intervention.Intervention, error) {
	return m.saved, nil
}

type mockNoteStore struct {
	saved []note.Note
}

func (m *mockNoteStore) Save(_ context.Context, n note.Note) error {
	m.saved = append(m.saved, n)
	return nil
}

func (m *mockNoteStore) ListByClientID(_ context.Context, _ string) ([]note.Note, error) {
	return m.saved, nil
}

type mockActivityLogStore struct {
	entries []activitylog.Entry
}

func (m *mockActivityLogStore) Save(_ context.Context, e activitylog.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *mockActivityLogStore) List(_ context.Context, _ activitylogStore.Filter) ([]activitylog.Entry, error) {
	return m.entries, nil
}

func (m *mockActivityLogStore) Count(_ context.Context, _ activitylogStore.Filter) (int, error) {
	return len(m.entries), nil
}

type mockScheduleStore struct {
	records    []grid.Record
	replaceErr error
}

func (m *mockScheduleStore) ListRecords(_ context.Context) ([]grid.Record, error) {
	return m.records, nil
}

func (m *mockScheduleStore) ReplaceAll(_ context.Context, records []grid.Record) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.records = records
	return nil
}

type mockEmailSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (m *mockEmailSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1", SentAt: fixedNow()}, nil
}

func (m *mockEmailSender) SendBatch(ctx context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	var results []email.SendResult
	for _, req := range reqs {
		res, err := m.Send(ctx, req)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
