// Package signal exposes a discrete signal source as a continuous-time
// value function by combining it with an interpolator, a sampling interval,
// and a prebuffer offset. [Interpolated] is the facade every generator in
// package noise ultimately returns.
package signal
