package levent

// AddOption configures a single registration on an event.
type AddOption func(*addConfig)

type addConfig struct {
	priority        Priority
	allowDuplicates bool
}

// WithPriority sets the listener's priority. Higher priorities fire first;
// the default is 0.
func WithPriority(p Priority) AddOption {
	return func(c *addConfig) {
		c.priority = p
	}
}

// AllowDuplicates permits registering a delegate equal to one already
// present instead of rejecting it with ErrCallbackAlreadyAdded.
func AllowDuplicates() AddOption {
	return func(c *addConfig) {
		c.allowDuplicates = true
	}
}

// DeclareOption configures a registry declaration.
type DeclareOption func(*declareConfig)

type declareConfig struct {
	replace bool
}

// Replace makes Declare overwrite an occupied slot. The old event is
// destroyed and its outstanding connections go dead.
func Replace() DeclareOption {
	return func(c *declareConfig) {
		c.replace = true
	}
}
