package services

import "sync"

// KeyLockService serializes work per string key. Inspection creation locks
// the (driver, vehicle) pair across the duplicate-day check and the write,
// so two concurrent requests for the same pair cannot both pass the check.
// Requests for different pairs proceed in parallel.
type KeyLockService struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewKeyLockService() *KeyLockService {
	return &KeyLockService{locks: make(map[string]*keyLock)}
}

// Lock blocks until the key is held and returns the release function.
// Entries are reference counted and removed once the last holder releases.
func (s *KeyLockService) Lock(key string) (unlock func()) {
	s.mu.Lock()
	kl, ok := s.locks[key]
	if !ok {
		kl = &keyLock{}
		s.locks[key] = kl
	}
	kl.refs++
	s.mu.Unlock()

	kl.mu.Lock()

	return func() {
		kl.mu.Unlock()

		s.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
