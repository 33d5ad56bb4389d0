package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type key struct {
	namespace string
	owner     string
}

// keyState tracks sequence numbers for one key. Until the committed sequence
// is known (seeded) submits are numbered from zero and shifted by base once
// a worker or Restore has loaded it.
type keyState struct {
	seq    uint64
	base   uint64
	seeded bool
}

// Writer persists snapshots in the background. Callers never wait for or see
// a write's outcome; failures are logged and the caller's memory stays authoritative.
// Every submit gets the next sequence number for its key, so a slow older write
// can never overwrite a newer one.
type Writer struct {
	store   Store
	timeout time.Duration
	sem     chan struct{}
	wg      sync.WaitGroup

	mu   sync.Mutex
	keys map[key]*keyState
}

// NewWriter creates a Writer running at most workers concurrent saves.
func NewWriter(store Store, workers int) *Writer {
	if workers <= 0 {
		workers = 1
	}
	return &Writer{
		store:   store,
		timeout: 10 * time.Second,
		sem:     make(chan struct{}, workers),
		keys:    make(map[key]*keyState),
	}
}

func (w *Writer) state(k key) *keyState {
	st, ok := w.keys[k]
	if !ok {
		st = &keyState{}
		w.keys[k] = st
	}
	return st
}

// next assigns the next sequence for k. relative is true when the committed
// sequence is not known yet and the result still has to be shifted by base.
func (w *Writer) next(k key) (seq uint64, relative bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.state(k)
	st.seq++
	return st.seq, !st.seeded
}

// commit records the committed sequence loaded from the store.
func (w *Writer) commit(k key, committed uint64) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.state(k)
	if !st.seeded {
		st.base = committed
		st.seq += committed
		st.seeded = true
	} else if committed > st.seq {
		st.seq = committed
	}
	return st.base
}

// base returns the offset for relative sequences of k, loading the committed
// sequence from the store when no Restore has succeeded for the key.
func (w *Writer) base(ctx context.Context, k key) (uint64, error) {
	w.mu.Lock()
	st := w.state(k)
	if st.seeded {
		b := st.base
		w.mu.Unlock()
		return b, nil
	}
	w.mu.Unlock()

	_, committed, err := w.store.Load(ctx, k.namespace, k.owner)
	if err != nil {
		return 0, err
	}
	return w.commit(k, committed), nil
}

// Submit snapshots v immediately and schedules the write. It returns the sequence
// assigned to the write, or 0 if v could not be encoded. While the key's committed
// sequence is unknown the returned value is relative to it.
func (w *Writer) Submit(namespace, owner string, v interface{}) uint64 {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("namespace", namespace).Str("owner", owner).Msg("Snapshot encode failed")
		return 0
	}
	k := key{namespace: namespace, owner: owner}
	seq, relative := w.next(k)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.sem <- struct{}{}
		defer func() { <-w.sem }()

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()
		seq := seq
		if relative {
			base, err := w.base(ctx, k)
			if err != nil {
				log.Error().Err(err).Str("namespace", namespace).Str("owner", owner).Msg("Snapshot write skipped, committed sequence unknown")
				return
			}
			seq += base
		}
		err := w.store.Save(ctx, Record{Namespace: namespace, Owner: owner, Seq: seq, Payload: payload})
		switch {
		case err == nil:
		case errors.Is(err, ErrStaleWrite):
			log.Debug().Str("namespace", namespace).Str("owner", owner).Uint64("seq", seq).Msg("Snapshot superseded")
		default:
			log.Error().Err(err).Str("namespace", namespace).Str("owner", owner).Uint64("seq", seq).Msg("Snapshot write failed")
		}
	}()
	return seq
}

// Restore decodes the committed snapshot for a key into dst and reports whether one existed.
// Later submits for the key continue after the restored sequence. When the load fails
// the key stays unseeded and the next write loads the committed sequence itself.
func (w *Writer) Restore(ctx context.Context, namespace, owner string, dst interface{}) (bool, error) {
	k := key{namespace: namespace, owner: owner}
	payload, seq, err := w.store.Load(ctx, namespace, owner)
	if err != nil {
		return false, err
	}
	w.commit(k, seq)
	if len(payload) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Forget drops the sequence state of a key. Call it only after Flush, when no
// write for the key is pending; the next Restore or write reloads it.
func (w *Writer) Forget(namespace, owner string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.keys, key{namespace: namespace, owner: owner})
}

// Flush blocks until every submitted write has finished or ctx is done.
func (w *Writer) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Persister is the part of Writer the state containers depend on.
type Persister interface {
	Submit(namespace, owner string, v interface{}) uint64
	Restore(ctx context.Context, namespace, owner string, dst interface{}) (bool, error)
}

var _ Persister = (*Writer)(nil)
