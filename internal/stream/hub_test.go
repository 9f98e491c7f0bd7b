package stream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register()
	defer hub.Unregister(client)

	hub.Broadcast([]byte("hello"))

	select {
	case msg := <-client.Send:
		if string(msg) != "hello" {
			t.Fatalf("unexpected message")
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("timeout waiting for message")
	}
}

func TestUnregisterCloses(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register()
	hub.Unregister(client)
	_, ok := <-client.Send
	if ok {
		t.Fatalf("expected channel closed")
	}
}

func TestBroadcastSkipsFullClient(t *testing.T) {
	hub := NewHub(nil)
	client := hub.Register()
	defer hub.Unregister(client)

	for i := 0; i < cap(client.Send)+10; i++ {
		hub.Broadcast([]byte("burst"))
	}
	if len(client.Send) != cap(client.Send) {
		t.Fatalf("expected saturated buffer, got %d", len(client.Send))
	}
}

func TestHubRedisSubscribeForwards(t *testing.T) {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer rdb.Close()

	hub := NewHub(rdb)
	client := hub.Register()
	defer hub.Unregister(client)

	time.Sleep(20 * time.Millisecond)
	if err := rdb.Publish(context.Background(), redisChannel, "pong").Err(); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	select {
	case msg := <-client.Send:
		if string(msg) != "pong" {
			t.Fatalf("unexpected message from redis")
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for redis message")
	}
}

func TestHubRedisPublishError(t *testing.T) {
	server := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: server.Addr()})
	server.Close()
	defer rdb.Close()

	hub := NewHub(rdb)
	client := hub.Register()
	defer hub.Unregister(client)

	hub.Broadcast([]byte("ping"))
}
