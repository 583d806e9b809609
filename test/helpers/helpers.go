// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/easyboard/easyboard-go/internal/core/domain"
	"github.com/easyboard/easyboard-go/internal/pkg/config"
)

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-easyboard",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		API: config.APIConfig{
			BaseURL:           "http://localhost:8000",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 100,
			Burst:             10,
		},
		Search: config.SearchConfig{
			Debounce: 10 * time.Millisecond,
			PageSize: 20,
		},
		Session: config.SessionConfig{
			Backend:  "memory",
			TokenKey: "test:token",
		},
		Redis: config.RedisConfig{
			Host:        "localhost",
			Port:        "6379",
			DB:          0,
			DialTimeout: time.Second,
			ReadTimeout: time.Second,
		},
	}
}

// CreateTestListing creates a listing with realistic values. Mutators can
// override individual fields.
func CreateTestListing(mutators ...func(*domain.Listing)) *domain.Listing {
	listing := &domain.Listing{
		ID:           42,
		Title:        "Vintage road bike",
		Description:  "Steel frame, recently serviced, rides great.",
		Price:        decimal.NewFromInt(250),
		Category:     "sports",
		Condition:    "used",
		ContactPhone: "+15550100",
		Author:       &domain.Author{ID: 7, Username: "seller"},
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, mutate := range mutators {
		mutate(listing)
	}
	return listing
}

// CreateTestMember creates the member that owns CreateTestListing
func CreateTestMember(mutators ...func(*domain.Member)) *domain.Member {
	member := &domain.Member{
		ID:       7,
		Username: "seller",
		Email:    "seller@example.com",
		Phone:    "+15550100",
	}
	for _, mutate := range mutators {
		mutate(member)
	}
	return member
}

// CreateTestPage wraps listings in a single-page result
func CreateTestPage(listings ...domain.Listing) *domain.ResultPage {
	return &domain.ResultPage{
		Count:   len(listings),
		Results: listings,
	}
}

// CreateTestCategories returns a small category reference list
func CreateTestCategories() domain.ReferenceList {
	return domain.ReferenceList{
		{Key: "electronics", Label: "Electronics"},
		{Key: "sports", Label: "Sports & Outdoors"},
		{Key: "furniture", Label: "Furniture"},
	}
}

// CreateTestConditions returns a small condition reference list
func CreateTestConditions() domain.ReferenceList {
	return domain.ReferenceList{
		{Key: "new", Label: "New"},
		{Key: "used", Label: "Used"},
	}
}
