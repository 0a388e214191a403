package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksRepoCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRepoCall("memory", "get_game", 10*time.Millisecond, nil)
	rec.RecordRepoCall("memory", "get_game", 15*time.Millisecond, errors.New("boom"))

	if got := rec.RepoCalls("get_game"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.RepoErrors("get_game"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("get_game"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("get_game")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("list_games"); other.Calls != 0 {
		t.Fatalf("expected untouched operation to be empty, got %+v", other)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordRepoCall("memory", "list_games", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/games", 200, time.Millisecond)
	if got := rec.Snapshot("list_games"); got.Calls != 0 {
		t.Fatalf("expected empty snapshot, got %+v", got)
	}
}

func TestRecorderSeparatesStoresAndAggregatesOperation(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRepoCall("memory", "list_games", time.Millisecond, nil)
	rec.RecordRepoCall("sqlite", "list_games", 2*time.Millisecond, errors.New("locked"))
	rec.RecordRepoCall("sqlite", "list_games", 3*time.Millisecond, nil)

	if got := rec.StoreSnapshot("memory", "list_games"); got.Calls != 1 || got.Errors != 0 {
		t.Fatalf("unexpected memory stats %+v", got)
	}
	sqlite := rec.StoreSnapshot("sqlite", "list_games")
	if sqlite.Calls != 2 || sqlite.Errors != 1 || sqlite.LastCallLatency != 3*time.Millisecond {
		t.Fatalf("unexpected sqlite stats %+v", sqlite)
	}
	if got := rec.RepoCalls("list_games"); got != 3 {
		t.Fatalf("expected 3 calls across stores, got %d", got)
	}
}

func TestRecorderWithoutStoreNameCountsOnce(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRepoCall("", "get_game", time.Millisecond, nil)

	if got := rec.RepoCalls("get_game"); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
}

func TestRecorderConcurrentCallsAreAllCounted(t *testing.T) {
	rec := NewRecorder()
	const workers = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				err = errors.New("boom")
			}
			rec.RecordRepoCall("memory", "create_game", time.Duration(i)*time.Microsecond, err)
			_ = rec.Snapshot("create_game")
		}(i)
	}
	wg.Wait()

	snap := rec.StoreSnapshot("memory", "create_game")
	if snap.Calls != workers || snap.Errors != workers/2 {
		t.Fatalf("expected %d calls and %d errors, got %+v", workers, workers/2, snap)
	}
}
