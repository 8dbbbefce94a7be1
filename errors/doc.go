// Package errors provides the error handling framework shared by every
// package in this library.
//
// # Error Classification
//
// Errors are classified into three categories that tell callers how to react:
//
//   - Transient: temporary conditions a caller may retry
//   - Invalid: bad input or configuration; retrying identical input cannot help
//   - Fatal: unrecoverable conditions; processing should stop
//
// The library itself never retries anything. Every operation either succeeds
// or fails immediately and synchronously; classification exists so that
// hosting applications can make that decision with one call:
//
//	if errors.IsInvalid(err) {
//		// programming error, fix the call site
//	}
//
// # Wrapping
//
// All errors crossing a package boundary are wrapped with component and
// operation context using the "component.method: action failed: %w" pattern:
//
//	return errors.WrapInvalid(errors.ErrInvalidCapacity,
//		"ring", "New", fmt.Sprintf("capacity %d", capacity))
//
// Wrapped errors remain compatible with stdlib errors.Is and errors.As, so
// sentinel checks such as errors.Is(err, errors.ErrInvalidTailSize) work
// through any number of layers.
//
// # Sentinels
//
// The buffer contract produces exactly three failure conditions, each with a
// sentinel: ErrInvalidCapacity (construction with capacity < 1),
// ErrInvalidTailSize (tail view requested with n < 1) and
// ErrUnsupportedOperation (removal or retention requested through the
// collection adapter). Everything else in the contract is a total function
// and never fails.
package errors
