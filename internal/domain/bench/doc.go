// Package bench describes the session speed test.
package bench
