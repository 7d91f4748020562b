package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectors(t *testing.T) {
	APIRequests.Reset()
	CacheMutations.Reset()
	Notifications.Reset()

	APIRequests.WithLabelValues("menu", "list", "ok").Inc()
	APIRequests.WithLabelValues("menu", "list", "ok").Inc()
	if got := testutil.ToFloat64(APIRequests.WithLabelValues("menu", "list", "ok")); got != 2 {
		t.Fatalf("APIRequests: want 2, got %v", got)
	}

	CacheMutations.WithLabelValues("order", "create").Inc()
	if got := testutil.ToFloat64(CacheMutations.WithLabelValues("order", "create")); got != 1 {
		t.Fatalf("CacheMutations: want 1, got %v", got)
	}

	CacheSize.WithLabelValues("menu").Set(7)
	if got := testutil.ToFloat64(CacheSize.WithLabelValues("menu")); got != 7 {
		t.Fatalf("CacheSize: want 7, got %v", got)
	}

	Notifications.WithLabelValues("order").Add(3)
	if got := testutil.ToFloat64(Notifications.WithLabelValues("order")); got != 3 {
		t.Fatalf("Notifications: want 3, got %v", got)
	}
}
