// Package core provides shared numeric helpers and the library-wide
// diagnostic logger. The logger is a no-op unless installed with [SetLogger];
// all functional failures are reported through returned errors.
package core
