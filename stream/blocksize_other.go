//go:build !windows

package stream

// RecommendedBlockSize is the buffering granularity assumed when the OS
// cannot report a preferred block size.
const RecommendedBlockSize = 128 * 1024
