// Package scan ties the sidecar collector and asset scanner into the
// missing-script pipeline and shapes the result for reporting.
package scan
