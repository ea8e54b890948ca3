// Package metrics holds the Prometheus collectors of the tracker host.
package metrics
