// Package cache memoizes view selections.
//
// It provides the ViewKey lookup key, a Cache interface with an in-memory
// implementation, and a Memoizer that runs a resolver on miss and stores only
// successful results.
package cache
