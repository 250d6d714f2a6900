package repository

// CacheRepository memoizes computed simulation results by input key. The
// pipeline is deterministic, so a hit is always safe to serve.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
