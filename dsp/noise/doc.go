// Package noise assembles the full generator pipelines: power-law colored
// noise, externally sampled records with optional post-filtering, and cached
// reinterpolation of expensive continuous signals. Every generator exposes
// the continuous-time contract of package signal and propagates resets down
// through every owned component.
package noise
