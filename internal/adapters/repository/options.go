package repository

// Option applies a configuration option to the FixtureStore.
type Option func(*FixtureStore)

// WithFixtureFile loads records from a YAML file on disk instead of the
// embedded fixtures.
func WithFixtureFile(path string) Option {
	return func(s *FixtureStore) {
		s.path = path
	}
}
