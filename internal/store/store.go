// Package store - in-memory хранилище записей пожарной части.
// Все таблицы принадлежат одному экземпляру Store; значения копируются на границе,
// поэтому вызывающий код не может изменить внутреннее состояние по ссылке.
package store

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/fire_ops_system/internal/models"
)

// DefaultBillingRates - тарифы для тарифицируемых типов инцидентов
var DefaultBillingRates = map[string]models.BillingRate{
	"MVA":          {Description: "MVA Response", Rate: 450},
	"Hazmat":       {Description: "Hazmat Mitigation", Rate: 1200},
	"Vehicle Fire": {Description: "Vehicle Fire Response", Rate: 350},
	"Lift Assist":  {Description: "Non-Emergency Lift Assist", Rate: 150},
}

type Store struct {
	mu sync.RWMutex

	nowFn     func() time.Time
	randFn    func() float64
	latency   time.Duration
	errorRate float64
	lastID    map[string]int64
	rates     map[string]models.BillingRate

	incidents     []models.Incident
	personnel     []models.Personnel
	shifts        []models.Shift
	exposures     []models.ExposureLog
	apparatus     []models.Apparatus
	owners        []models.Owner
	properties    []models.Property
	fireDues      []models.FireDue
	invoices      []models.Invoice
	budgets       []models.Budget
	assets        []models.Asset
	auditLog      []models.AuditLogEntry
	notifications []models.Notification
	courses       []models.Course
	alertRules    []models.AlertRule
	citizens      []models.Citizen
	forgiveness   []models.BillForgivenessRequest
}

type Option func(*Store)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.nowFn = now
	}
}

// WithLatency задает искусственную задержку каждого вызова
func WithLatency(d time.Duration) Option {
	return func(s *Store) {
		s.latency = d
	}
}

// WithErrorRate задает долю вызовов, завершающихся ErrTransient
func WithErrorRate(rate float64, random func() float64) Option {
	return func(s *Store) {
		s.errorRate = rate
		if random != nil {
			s.randFn = random
		}
	}
}

func WithBillingRates(rates map[string]models.BillingRate) Option {
	return func(s *Store) {
		s.rates = make(map[string]models.BillingRate, len(rates))
		for k, v := range rates {
			s.rates[k] = v
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		nowFn:  func() time.Time { return time.Now().UTC() },
		randFn: rand.Float64,
		lastID: make(map[string]int64),
	}
	WithBillingRates(DefaultBillingRates)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now возвращает текущее время по часам хранилища
func (s *Store) Now() time.Time {
	return s.nowFn()
}

// simulate эмулирует сетевой вызов: задержка и случайный отказ
func (s *Store) simulate(ctx context.Context) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	if s.errorRate > 0 && s.randFn() < s.errorRate {
		return ErrTransient
	}
	return nil
}

// newID выдает идентификатор вида {prefix}-{millis}; вызывается под s.mu
func (s *Store) newID(prefix string) string {
	ms := s.nowFn().UnixMilli()
	if last, ok := s.lastID[prefix]; ok && ms <= last {
		ms = last + 1
	}
	s.lastID[prefix] = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}

func (s *Store) observeID(id string) {
	idx := strings.LastIndex(id, "-")
	if idx <= 0 {
		return
	}
	ms, err := strconv.ParseInt(id[idx+1:], 10, 64)
	if err != nil {
		return
	}
	prefix := id[:idx]
	if ms > s.lastID[prefix] {
		s.lastID[prefix] = ms
	}
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	for i := range items {
		if key(items[i]) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
