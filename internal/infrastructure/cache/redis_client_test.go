package cache

import "testing"

func TestRedisOptionsFromEnv(t *testing.T) {
	t.Run("unset disables cache", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "")
		t.Setenv("REDIS_HOST", "")
		if _, ok := redisOptionsFromEnv(); ok {
			t.Fatalf("expected redis to be disabled")
		}
		if c := NewRedisClient(); c != nil {
			t.Fatalf("expected nil client")
		}
	})

	t.Run("host and port win over addr", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "ignored:1")
		t.Setenv("REDIS_HOST", "redis")
		t.Setenv("REDIS_PORT", "6380")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("REDIS_TLS", "true")

		opts, ok := redisOptionsFromEnv()
		if !ok {
			t.Fatalf("expected redis to be enabled")
		}
		if opts.Addr != "redis:6380" || opts.DB != 2 || opts.TLSConfig == nil {
			t.Fatalf("unexpected options: addr=%s db=%d tls=%v", opts.Addr, opts.DB, opts.TLSConfig != nil)
		}
	})

	t.Run("addr only", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("REDIS_HOST", "")
		t.Setenv("REDIS_DB", "x")
		t.Setenv("REDIS_TLS", "")

		opts, ok := redisOptionsFromEnv()
		if !ok || opts.Addr != "localhost:6379" || opts.DB != 0 || opts.TLSConfig != nil {
			t.Fatalf("unexpected options: %+v", opts)
		}
	})
}
